package service

import (
	"github.com/taskvio/timetrack/internal/handlers/approval"
	"github.com/taskvio/timetrack/internal/handlers/completion"
	"github.com/taskvio/timetrack/internal/handlers/escrow"
	"github.com/taskvio/timetrack/internal/handlers/stats"
	"github.com/taskvio/timetrack/internal/handlers/timetrack"

	"github.com/taskvio/timetrack/internal/config"
	"github.com/taskvio/timetrack/internal/repo"
	approvalservice "github.com/taskvio/timetrack/internal/service/approvalservice"
	completionservice "github.com/taskvio/timetrack/internal/service/completionservice"
	escrowservice "github.com/taskvio/timetrack/internal/service/escrowservice"
	ledgerservice "github.com/taskvio/timetrack/internal/service/ledgerservice"
	statsservice "github.com/taskvio/timetrack/internal/service/statsservice"
)

type Services struct {
	LedgerService     timetrack.Service
	ApprovalService   approval.Service
	EscrowService     escrow.Service
	CompletionService completion.Service
	StatsService      stats.Service
}

func New(cfg *config.Config, repo *repo.Repositories, payments escrowservice.PaymentAPI, rates ledgerservice.RateResolver) *Services {
	ledgerService := ledgerservice.New(repo.TrackingRepo, repo.EntryRepo, rates)
	approvalService := approvalservice.New(repo.TrackingRepo, repo.EntryRepo, repo.ApprovalRepo)
	escrowService := escrowservice.New(repo.TrackingRepo, repo.EntryRepo, repo.EscrowRepo, payments, cfg.PlatformFeeBps, cfg.Currency)
	completionService := completionservice.New(repo.TrackingRepo, escrowService)
	statsService := statsservice.New(repo.TrackingRepo)

	return &Services{
		LedgerService:     ledgerService,
		ApprovalService:   approvalService,
		EscrowService:     escrowService,
		CompletionService: completionService,
		StatsService:      statsService,
	}
}
