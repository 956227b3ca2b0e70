package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/zeromicro/go-zero/core/logx"

	"fintab/internal/cli"
	"fintab/internal/config"
	"fintab/internal/svc"
	"fintab/pkg/fundamentals"
	"fintab/pkg/journal"
	"fintab/pkg/table"
)

func main() {
	var (
		configPath = flag.String("f", "etc/fintab.yaml", "the config file")
		resource   = flag.String("resource", "balance", "resource to retrieve: balance|income|cashflow|profile|quote|enterprise|rating|transcript|revenue-geo|revenue-product")
		tickersRaw = flag.String("tickers", "", "comma-separated list of tickers")
		quarter    = flag.Bool("quarter", false, "retrieve quarterly data where supported")
		limit      = flag.Int("limit", 0, "maximum reporting periods per ticker (0 = config default)")
		year       = flag.Int("year", 0, "fiscal year for earnings call transcripts")
		digest     = flag.Bool("digest", false, "summarise retrieved transcripts via the insights endpoint")
		persist    = flag.Bool("persist", false, "persist statement rows to Postgres when configured")
		timeout    = flag.Duration("timeout", 5*time.Minute, "overall retrieval deadline")
	)
	flag.Parse()
	logx.MustSetup(logx.LogConf{})
	logx.DisableStat()

	tickers := parseTickers(*tickersRaw)
	if len(tickers) == 0 {
		fatalf("no tickers provided; use --tickers to specify at least one")
	}

	cfg := config.MustLoad(*configPath)
	cli.LogConfigSummary(cfg)

	sctx := svc.NewServiceContext(*cfg)

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	combined, err := dispatch(ctx, sctx.Fundamentals, *resource, tickers, *quarter, *limit, *year)
	writeJournal(sctx, *resource, tickers, *quarter, *limit, *year, combined, err)
	if err != nil {
		fatalf("retrieve %s: %v", *resource, err)
	}

	if single, ok := combined.Single(); ok {
		fmt.Println(single.String())
	} else {
		fmt.Println(combined.String())
	}

	if *persist {
		persistStatements(ctx, sctx, *resource, combined)
	}
	if *digest {
		digestTranscripts(ctx, sctx, *resource, combined)
	}
}

func dispatch(ctx context.Context, service *fundamentals.Service, resource string, tickers []string, quarter bool, limit, year int) (*table.Grouped, error) {
	switch resource {
	case "balance", "income", "cashflow":
		return service.Statements(ctx, tickers, fundamentals.StatementKind(resource), fundamentals.StatementOptions{
			Quarter: quarter,
			Limit:   limit,
		})
	case "profile":
		return service.Profile(ctx, tickers)
	case "quote":
		return service.Quote(ctx, tickers)
	case "enterprise":
		return service.EnterpriseValue(ctx, tickers, fundamentals.EnterpriseOptions{Quarter: quarter, Limit: limit})
	case "rating":
		return service.Rating(ctx, tickers, limit)
	case "transcript":
		return service.Transcript(ctx, tickers, year)
	case "revenue-geo":
		return service.RevenueByGeography(ctx, tickers, quarter)
	case "revenue-product":
		return service.RevenueByProduct(ctx, tickers, quarter)
	default:
		return nil, fmt.Errorf("unknown resource %q", resource)
	}
}

func writeJournal(sctx *svc.ServiceContext, resource string, tickers []string, quarter bool, limit, year int, combined *table.Grouped, retrieveErr error) {
	if sctx.Journal == nil {
		return
	}
	rec := &journal.BatchRecord{
		Resource: resource,
		Tickers:  tickers,
		Quarter:  quarter,
		Limit:    limit,
		Year:     year,
		Success:  retrieveErr == nil,
	}
	if retrieveErr != nil {
		rec.ErrorMessage = retrieveErr.Error()
	}
	if combined != nil {
		rec.RowCounts = make(map[string]int, len(combined.Keys()))
		for _, key := range combined.Keys() {
			if entity, ok := combined.Group(key); ok {
				rec.RowCounts[key] = len(entity.Rows())
			}
		}
		rec.ColumnCount = len(combined.Columns())
		_, rec.Collapsed = combined.Single()
	}
	if path, err := sctx.Journal.WriteBatch(rec); err != nil {
		logx.Errorf("journal write failed: %v", err)
	} else {
		logx.Infof("journal written to %s", path)
	}
}

func persistStatements(ctx context.Context, sctx *svc.ServiceContext, resource string, combined *table.Grouped) {
	switch resource {
	case "balance", "income", "cashflow":
	default:
		logx.Infof("persistence skipped: resource %s is not a statement", resource)
		return
	}
	if sctx.Statements == nil {
		logx.Error("persistence requested but no Postgres DSN configured")
		return
	}
	if err := sctx.Statements.SaveStatements(ctx, resource, combined); err != nil {
		fatalf("persist %s statements: %v", resource, err)
	}
	logx.Infof("persisted %s statements for %d tickers", resource, len(combined.Keys()))
}

func digestTranscripts(ctx context.Context, sctx *svc.ServiceContext, resource string, combined *table.Grouped) {
	if resource != "transcript" {
		logx.Infof("digest skipped: resource %s is not a transcript", resource)
		return
	}
	if sctx.Digester == nil {
		logx.Error("digest requested but no insights endpoint configured")
		return
	}
	for _, ticker := range combined.Keys() {
		entity, ok := combined.Group(ticker)
		if !ok {
			continue
		}
		for _, callDate := range entity.Rows() {
			raw, present := entity.Value(callDate, "content")
			if !present {
				continue
			}
			content, ok := raw.(string)
			if !ok || strings.TrimSpace(content) == "" {
				continue
			}
			summary, err := sctx.Digester.Summarize(ctx, ticker, callDate, content)
			if err != nil {
				logx.Errorf("digest %s %s: %v", ticker, callDate, err)
				continue
			}
			fmt.Printf("\n== %s earnings call %s ==\n%s\n", ticker, callDate, summary)
		}
	}
}

func parseTickers(raw string) []string {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ';' || r == ' ' || r == '\t'
	})
	out := make([]string, 0, len(fields))
	for _, field := range fields {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		out = append(out, strings.ToUpper(field))
	}
	return out
}

func fatalf(format string, args ...interface{}) {
	logx.Errorf(format, args...)
	os.Exit(1)
}
