package config

// AppConfig holds application-level settings.
type AppConfig struct {
	LogLevel string `mapstructure:"log_level"`
	DataDir  string `mapstructure:"data_dir"`
	LogDir   string `mapstructure:"log_dir"`
}

// HTTPConfig controls outbound list-page requests.
type HTTPConfig struct {
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
	UserAgent      string `mapstructure:"user_agent"`
	Accept         string `mapstructure:"accept"`
	AcceptLanguage string `mapstructure:"accept_language"`
}

// SourceConfig describes one press-release board. List is a URL template
// with a {page} placeholder.
type SourceConfig struct {
	Base string `mapstructure:"base"`
	List string `mapstructure:"list"`
}

// PressConfig groups the four press-release sources and the batch policy.
type PressConfig struct {
	WindowDays int          `mapstructure:"window_days"`
	MaxPages   int          `mapstructure:"max_pages"`
	FSC        SourceConfig `mapstructure:"fsc"`
	FSS        SourceConfig `mapstructure:"fss"`
	BOK        SourceConfig `mapstructure:"bok"`
	MSIT       SourceConfig `mapstructure:"msit"`
}

// NewsConfig controls the keyword news batch.
type NewsConfig struct {
	Keywords          []string `mapstructure:"keywords"`
	MaxItemsPerSource int      `mapstructure:"max_items_per_source"`
	WaitSeconds       int      `mapstructure:"wait_seconds"` // rendered-page selector wait
}

// ScheduleConfig holds the minute-of-hour triggers for the two jobs.
type ScheduleConfig struct {
	PressMinute int `mapstructure:"press_minute"`
	NewsMinute  int `mapstructure:"news_minute"`
}

// RedisConfig holds redis connection settings for the optional latest-batch
// mirror. An empty Addr disables the mirror.
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// Config is the top-level configuration structure.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	HTTP     HTTPConfig     `mapstructure:"http"`
	Press    PressConfig    `mapstructure:"press"`
	News     NewsConfig     `mapstructure:"news"`
	Schedule ScheduleConfig `mapstructure:"schedule"`
	Redis    RedisConfig    `mapstructure:"redis"`
}

// FillDefaults applies default values if not provided.
func (c *Config) FillDefaults() {
	if c.App.LogLevel == "" {
		c.App.LogLevel = "info"
	}
	if c.App.DataDir == "" {
		c.App.DataDir = "./data"
	}
	if c.App.LogDir == "" {
		c.App.LogDir = "./logs"
	}
	if c.HTTP.TimeoutSeconds == 0 {
		c.HTTP.TimeoutSeconds = 30
	}
	if c.HTTP.UserAgent == "" {
		c.HTTP.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	}
	if c.HTTP.Accept == "" {
		c.HTTP.Accept = "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8"
	}
	if c.HTTP.AcceptLanguage == "" {
		c.HTTP.AcceptLanguage = "ko-KR,ko;q=0.9,en-US;q=0.8,en;q=0.7"
	}
	if c.Press.WindowDays == 0 {
		c.Press.WindowDays = 90
	}
	if c.Press.MaxPages == 0 {
		c.Press.MaxPages = 2
	}
	if c.Press.FSC.Base == "" {
		c.Press.FSC.Base = "https://www.fsc.go.kr"
		c.Press.FSC.List = "https://www.fsc.go.kr/no010101?curPage={page}"
	}
	if c.Press.FSS.Base == "" {
		c.Press.FSS.Base = "https://www.fss.or.kr"
		c.Press.FSS.List = "https://www.fss.or.kr/fss/bbs/B0000188/list.do?menuNo=200218&bbsId=B0000188&pageIndex={page}"
	}
	if c.Press.BOK.Base == "" {
		c.Press.BOK.Base = "https://www.bok.or.kr"
		c.Press.BOK.List = "https://www.bok.or.kr/portal/bbs/B0000338/list.do?menuNo=200761&pageIndex={page}"
	}
	if c.Press.MSIT.Base == "" {
		c.Press.MSIT.Base = "https://www.msit.go.kr"
		c.Press.MSIT.List = "https://www.msit.go.kr/bbs/list.do?sCode=user&mId=129&mPid=112&bbsSeqNo=94&pageIndex={page}"
	}
	if len(c.News.Keywords) == 0 {
		c.News.Keywords = []string{
			"신한은행",
			"보이스피싱",
			"디지털금융",
			"금융소비자보호",
			"장애인 금융",
			"금융 사기",
		}
	}
	if c.News.MaxItemsPerSource == 0 {
		c.News.MaxItemsPerSource = 5
	}
	if c.News.WaitSeconds == 0 {
		c.News.WaitSeconds = 10
	}
	if c.Schedule.PressMinute == 0 {
		c.Schedule.PressMinute = 10
	}
	if c.Schedule.NewsMinute == 0 {
		c.Schedule.NewsMinute = 40
	}
}
