package config

type Database struct {
	Type          string `json:"type" mapstructure:"type" yaml:"type"`
	SqlitePath    string `json:"sqlite_path" mapstructure:"sqlite_path" yaml:"sqlite_path"`
	MysqlHost     string `json:"mysql_host" mapstructure:"mysql_host" yaml:"mysql_host"`
	MysqlPort     string `json:"mysql_port" mapstructure:"mysql_port" yaml:"mysql_port"`
	MysqlDbname   string `json:"mysql_dbname" mapstructure:"mysql_dbname" yaml:"mysql_dbname"`
	MysqlUsername string `json:"mysql_username" mapstructure:"mysql_username" yaml:"mysql_username"`
	MysqlPassword string `json:"mysql_password" mapstructure:"mysql_password" yaml:"mysql_password"`
}

type Redis struct {
	Addr        string `json:"addr" mapstructure:"addr" yaml:"addr"`
	Password    string `json:"password" mapstructure:"password" yaml:"password"`
	DB          int64  `json:"db" mapstructure:"db" yaml:"db"`
	StatsPrefix string `json:"stats_prefix" mapstructure:"stats_prefix" yaml:"stats_prefix"`
}

// Dataset 描述外部协作方提供的训练数据与模型工件的位置
type Dataset struct {
	CsvPath        string `json:"csv_path" mapstructure:"csv_path" yaml:"csv_path"`
	ModelPath      string `json:"model_path" mapstructure:"model_path" yaml:"model_path"`
	UploadDir      string `json:"upload_dir" mapstructure:"upload_dir" yaml:"upload_dir"`
	ChatLogCsv     string `json:"chat_log_csv" mapstructure:"chat_log_csv" yaml:"chat_log_csv"`
	ReloadCron     string `json:"reload_cron" mapstructure:"reload_cron" yaml:"reload_cron"`
	ReloadDebounce int64  `json:"reload_debounce" mapstructure:"reload_debounce" yaml:"reload_debounce"`
}

// Bot 聊天管线的可调参数
type Bot struct {
	KeywordMaxTokens   int     `json:"keyword_max_tokens" mapstructure:"keyword_max_tokens" yaml:"keyword_max_tokens"`
	AnnualInterestRate float64 `json:"annual_interest_rate" mapstructure:"annual_interest_rate" yaml:"annual_interest_rate"`
	MaxInputLength     uint    `json:"max_input_length" mapstructure:"max_input_length" yaml:"max_input_length"`
	SessionIdleMinutes int64   `json:"session_idle_minutes" mapstructure:"session_idle_minutes" yaml:"session_idle_minutes"`
}

type Llm struct {
	Url     string `json:"url" mapstructure:"url" yaml:"url"`
	Model   string `json:"model" mapstructure:"model" yaml:"model"`
	Auth    string `json:"auth" mapstructure:"auth" yaml:"auth"`
	Timeout int64  `json:"timeout" mapstructure:"timeout" yaml:"timeout"`
}

type Oss struct {
	Endpoint        string `json:"endpoint" mapstructure:"endpoint" yaml:"endpoint"`
	Bucket          string `json:"bucket" mapstructure:"bucket" yaml:"bucket"`
	AccessKeyId     string `json:"access_key_id" mapstructure:"access_key_id" yaml:"access_key_id"`
	AccessKeySecret string `json:"access_key_secret" mapstructure:"access_key_secret" yaml:"access_key_secret"`
	Domain          string `json:"domain" mapstructure:"domain" yaml:"domain"`
}
