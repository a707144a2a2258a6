package main

import (
	"os"

	"go.uber.org/zap"

	"github.com/fsdevblog/shortlink/internal/app"
	"github.com/fsdevblog/shortlink/internal/bmeta"
	"github.com/fsdevblog/shortlink/internal/config"
)

// Заполняются при сборке: go build -ldflags "-X main.buildVersion=v1.0.0 ...".
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	bmeta.Print(os.Stdout, buildVersion, buildDate, buildCommit)

	appConf := config.MustLoadConfig()

	a := app.Must(app.New(*appConf))

	a.Logger.Info("Starting server",
		zap.String("address", appConf.ServerAddress),
		zap.String("storage", string(appConf.DBType)),
		zap.Bool("cache", appConf.RedisAddr != ""),
	)
	if err := a.Run(); err != nil {
		a.Logger.Fatal("server stopped", zap.Error(err))
	}
}
