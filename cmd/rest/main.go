package main

import (
	"context"
	"log"

	"healthsphere-ml-be/internal/bootstrap"
	"healthsphere-ml-be/internal/config"
	"healthsphere-ml-be/internal/server"
	"healthsphere-ml-be/internal/tracer"
)

func main() {
	// 1. Initialize Tracer
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 2. Load Configuration
	cfg := config.Load()

	// 3. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)
	defer container.SysLogger.Sync()

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
