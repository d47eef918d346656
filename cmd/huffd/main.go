// Command huffd serves huffpack compression over HTTP.
package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/op/go-logging"

	"github.com/chronos-tachyon/huffpack/internal/config"
	"github.com/chronos-tachyon/huffpack/internal/handler"
	"github.com/chronos-tachyon/huffpack/internal/logsetup"
	"github.com/chronos-tachyon/huffpack/internal/router"
)

var log = logging.MustGetLogger("huffd")

func main() {
	leveled := logsetup.Start(os.Stderr, "huffd")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.Debug {
		leveled.SetLevel(logging.DEBUG, "")
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.Default()
	router.Register(r, router.Dependencies{
		CodecHandler: handler.NewCodecHandler(cfg.MaxBody),
	})

	log.Infof("starting server at %s (max body %d bytes)", cfg.Addr, cfg.MaxBody)
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
