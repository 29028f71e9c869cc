package initialize

import (
	"flag"
	"fmt"
	"strings"

	"gitee.com/taoJie_1/bank-agent/global"
	"gitee.com/taoJie_1/bank-agent/model/config"
	"github.com/fsnotify/fsnotify"
	"github.com/gin-gonic/gin"
	"github.com/spf13/viper"
)

var (
	Conf string
	Act  string
)

func init() {
	flag.StringVar(&Conf, "c", "", "choose config file.")
	flag.StringVar(&Act, "a", "", `行为,默认为空,即启动服务; "dataset": 重新导入数据集; "classifier": 重载分类模型; "clear": 清除过期数据;`)
}

// New 创建一个新的初始化器，并加载配置文件
func New() *Initializer {
	var configPath string
	if gin.Mode() != gin.TestMode {
		flag.Parse()
		if Conf != "" {
			configPath = Conf
		}
	}
	if configPath == "" {
		configPath = `config.yaml`
	}

	ini := &Initializer{}

	v := viper.New()
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")
	if err := v.ReadInConfig(); err != nil {
		panic("读取配置失败[u9ij]: " + configPath + err.Error())
	}

	v.WatchConfig()
	v.OnConfigChange(func(e fsnotify.Event) {
		fmt.Println("配置文件变化[djiads]: ", e.Name)
		oldConfig := global.Config.DeepCopy()
		if err := v.Unmarshal(global.Config); err != nil {
			fmt.Println(err)
			return
		}
		handleConfig(global.Config)
		ini.HandleConfigChange(oldConfig, global.Config)
	})

	if err := v.Unmarshal(global.Config); err != nil {
		panic("出错[dhfal]: " + err.Error())
	}

	handleConfig(global.Config)

	return ini
}

// handleConfig 处理和设置配置的默认值
func handleConfig(c *config.Config) {
	c.StaticDir = strings.TrimRight(c.StaticDir, "/")

	if c.ProjectName == "" {
		c.ProjectName = "银行智能客服"
	}
	if c.GinAddr == "" {
		c.GinAddr = ":80"
	}
	if c.StaticDir == "" {
		c.StaticDir = "static"
	}
	if c.GinLogPath == "" {
		c.GinLogPath = "log/gin.log"
	}
	if c.RunLogPath == "" {
		c.RunLogPath = "log/run.log"
	}
	if c.Tz == "" {
		c.Tz = "Asia/Kolkata"
	}
	if len(c.Cors) == 0 {
		c.Cors = []string{"*"}
	}
	if c.Database.Type == "" {
		c.Database.Type = "sqlite3"
	}
	if c.Database.SqlitePath == "" {
		c.Database.SqlitePath = "data.db"
	}
	if c.Redis.Addr == "" {
		c.Redis.Addr = "127.0.0.1:6379"
	}
	if c.Redis.StatsPrefix == "" {
		c.Redis.StatsPrefix = "bankbot:stats:"
	}
	if c.Dataset.CsvPath == "" {
		c.Dataset.CsvPath = "data/bankbot_dataset.csv"
	}
	if c.Dataset.ModelPath == "" {
		c.Dataset.ModelPath = "data/intent_model.json"
	}
	if c.Dataset.UploadDir == "" {
		c.Dataset.UploadDir = "data/uploads"
	}
	if c.Dataset.ReloadCron == "" {
		c.Dataset.ReloadCron = "*/30 * * * *"
	}
	if c.Dataset.ReloadDebounce == 0 {
		c.Dataset.ReloadDebounce = 10
	}
	if c.Bot.KeywordMaxTokens == 0 {
		c.Bot.KeywordMaxTokens = 3
	}
	if c.Bot.AnnualInterestRate == 0 {
		c.Bot.AnnualInterestRate = 0.085
	}
	if c.Bot.MaxInputLength == 0 {
		c.Bot.MaxInputLength = 1000
	}
	if c.Bot.SessionIdleMinutes == 0 {
		c.Bot.SessionIdleMinutes = 60
	}
	if c.Llm.Timeout == 0 {
		c.Llm.Timeout = 10
	}
}
