package conf

type Bootstrap struct {
	Server *Server
	Log    *Log
	Region *Region
}

type Server struct {
	Http  *HTTP
	Limit *Limit
}

type HTTP struct {
	Addr        string
	Timeout     string
	MaxUploadMb int64 `json:"max_upload_mb"`
}

type Limit struct {
	Qps   float64 `json:"qps"`
	Burst int     `json:"burst"`
}

type Log struct {
	Level string `json:"level"`
	File  string `json:"file"`
}

type Region struct {
	Aliases   []*Alias `json:"aliases"`
	Districts []string `json:"districts"`
	Owners    []*Owner `json:"owners"`
}

type Alias struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type Owner struct {
	District string `json:"district"`
	Name     string `json:"name"`
}
