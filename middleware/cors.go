package middleware

import (
	"net/http"
	"time"

	"gitee.com/taoJie_1/bank-agent/global"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CorsHandle 跨域处理, 允许的来源取自配置
func CorsHandle() gin.HandlerFunc {
	conf := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}

	if len(global.Config.Cors) > 0 {
		conf.AllowOrigins = global.Config.Cors
	} else {
		conf.AllowAllOrigins = true
		conf.AllowCredentials = false
	}

	return cors.New(conf)
}

// OptionsMethod 预检请求直接返回204
func OptionsMethod(ctx *gin.Context) {
	if ctx.Request.Method == http.MethodOptions {
		ctx.AbortWithStatus(http.StatusNoContent)
		return
	}
	ctx.Next()
}
