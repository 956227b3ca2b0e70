package svc

import (
	"log"

	_ "github.com/jackc/pgx/v5/stdlib" // register pgx driver
	"github.com/zeromicro/go-zero/core/stores/sqlx"

	"fintab/internal/config"
	"fintab/internal/store"
	"fintab/pkg/fundamentals"
	"fintab/pkg/insights"
	"fintab/pkg/journal"
)

type ServiceContext struct {
	Config config.Config

	Fundamentals *fundamentals.Service
	Digester     *insights.Digester
	Journal      *journal.Writer

	// Optional persistence; nil unless a Postgres DSN is configured.
	DBConn     sqlx.SqlConn
	Statements *store.StatementStore
}

func NewServiceContext(c config.Config) *ServiceContext {
	svc := &ServiceContext{Config: c}

	if c.Fundamentals.Value != nil {
		svc.Fundamentals = c.Fundamentals.Value.BuildService()
	} else {
		svc.Fundamentals = fundamentals.NewService(nil)
	}

	if c.Insights.Value != nil {
		digester, err := insights.NewDigester(c.Insights.Value)
		if err != nil {
			log.Fatalf("failed to init transcript digester: %v", err)
		}
		svc.Digester = digester
	}

	if c.JournalDir != "" {
		svc.Journal = journal.NewWriter(c.JournalDir)
	}

	// Only open the DB when a DSN is provided; retrieval works without it.
	if c.Postgres.DSN != "" {
		conn := sqlx.NewSqlConn("pgx", c.Postgres.DSN)
		svc.DBConn = conn
		svc.Statements = store.NewStatementStore(conn)
	}
	return svc
}
