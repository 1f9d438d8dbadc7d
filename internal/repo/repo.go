package repo

import (
	"github.com/taskvio/timetrack/internal/pg"
	approvalrepo "github.com/taskvio/timetrack/internal/repo/approval-repo"
	entryrepo "github.com/taskvio/timetrack/internal/repo/entry-repo"
	escrowrepo "github.com/taskvio/timetrack/internal/repo/escrow-repo"
	trackingrepo "github.com/taskvio/timetrack/internal/repo/tracking-repo"
)

// Repositories bundles the storage layer. The tracking repo doubles as the
// stats source, so there is no separate stats repository.
type Repositories struct {
	TrackingRepo *trackingrepo.Repository
	EntryRepo    *entryrepo.Repository
	ApprovalRepo *approvalrepo.Repository
	EscrowRepo   *escrowrepo.Repository
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	trackingRepo := trackingrepo.New(conn, txManager)
	entryRepo := entryrepo.New(conn, txManager)
	approvalRepo := approvalrepo.New(conn, txManager)
	escrowRepo := escrowrepo.New(conn, txManager)

	return &Repositories{
		TrackingRepo: trackingRepo,
		EntryRepo:    entryRepo,
		ApprovalRepo: approvalRepo,
		EscrowRepo:   escrowRepo,
	}
}
