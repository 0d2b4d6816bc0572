package app

import (
	"fmt"
	"os"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/api"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/config"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/db"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/logger"
	"github.com/PushMaster9000/COLLEGE-EVENT-MANAGEMENT-SYSTEM/internal/repository/dao"
)

func Start() error {
	conf, err := config.Load("./cmd/app/config.yml")
	if err != nil {
		return fmt.Errorf("failed to initialize config -> %w", err)
	}

	if err = logger.Init(conf.API.Environment); err != nil {
		return fmt.Errorf("failed to initialize logger -> %w", err)
	}

	if conf.API.IsDevSigningKey() {
		zap.L().Warn("using the built-in development JWT signing key, do not run this in production")
	}

	dbURL := os.Getenv("DATABASE_URL")
	var postgresDB *gorm.DB
	if dbURL != "" {
		postgresDB, err = db.OpenPostgresWithURL(dbURL)
	} else {
		postgresDB, err = db.OpenPostgres(conf.Postgres)
	}
	if err != nil {
		return fmt.Errorf("failed to initialize database -> %w", err)
	}

	if err = dao.InitTables(postgresDB); err != nil {
		return fmt.Errorf("failed to migrate tables -> %w", err)
	}

	s := api.NewServer(conf, postgresDB)

	addr := ":" + s.Config.API.Port
	zap.L().Info(fmt.Sprintf("starting server at %v", addr))
	if err = s.Router.Run(addr); err != nil {
		return fmt.Errorf("failed to start the server -> %w", err)
	}

	return nil
}
