package services

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"gigcampus/internal/models/db_models"
	"gigcampus/pkg/utils"
)

func newEscrowService(f *fixture) EscrowService {
	return NewEscrowService(f.db, f.escrows, f.users, f.projects, f.ledger, zap.NewNop())
}

type escrowScene struct {
	payer   *db_models.User
	payee   *db_models.User
	project *db_models.Project
	payment *db_models.Payment
	escrow  *db_models.Escrow
}

func seedHeldEscrow(t *testing.T, f *fixture) escrowScene {
	t.Helper()

	payer := f.seedUser(t, db_models.UserTypeClient, 0)
	payee := f.seedUser(t, db_models.UserTypeStudent, 0)
	project := f.seedProject(t, payer.ID, db_models.ProjectStatusInProgress)
	payment := seedProjectPayment(t, f, payer.ID, payee.ID, project.ID, nil)

	if err := f.db.Model(payment).Update("status", db_models.PaymentStatusPaid).Error; err != nil {
		t.Fatalf("mark payment paid: %v", err)
	}
	payment.Status = db_models.PaymentStatusPaid

	escrow := f.seedEscrow(t, project.ID, payer.ID, payee.ID, payment.ID, 10_000, 1_000, 9_000)
	return escrowScene{payer: payer, payee: payee, project: project, payment: payment, escrow: escrow}
}

func TestReleaseCreditsPayeeAndCompletesProject(t *testing.T) {
	f := newFixture(t)
	svc := newEscrowService(f)
	scene := seedHeldEscrow(t, f)

	if err := svc.Release(context.Background(), scene.escrow.ID, scene.payer.ID, "work approved"); err != nil {
		t.Fatalf("release: %v", err)
	}

	escrow, err := f.escrows.FindByID(context.Background(), scene.escrow.ID)
	if err != nil || escrow == nil {
		t.Fatalf("load escrow: %v", err)
	}
	if escrow.Status != db_models.EscrowStatusReleased || escrow.ReleaseDate == nil {
		t.Fatalf("escrow not released: status=%s release_date=%v", escrow.Status, escrow.ReleaseDate)
	}

	payee, err := f.users.FindByID(context.Background(), scene.payee.ID)
	if err != nil || payee == nil {
		t.Fatalf("load payee: %v", err)
	}
	if payee.TotalEarnings != 9_000 || payee.AvailableBalance != 9_000 || payee.CompletedProjects != 1 {
		t.Fatalf("payee counters wrong: earnings=%d balance=%d completed=%d",
			payee.TotalEarnings, payee.AvailableBalance, payee.CompletedProjects)
	}

	project, err := f.projects.FindByID(context.Background(), scene.project.ID)
	if err != nil || project == nil {
		t.Fatalf("load project: %v", err)
	}
	if project.Status != db_models.ProjectStatusCompleted || project.CompletedAt == nil {
		t.Fatalf("project not completed: status=%s", project.Status)
	}

	hasEntry, err := f.ledger.HasEntry(context.Background(),
		db_models.LedgerRefEscrow, scene.escrow.ID, db_models.LedgerCredit)
	if err != nil {
		t.Fatalf("check ledger: %v", err)
	}
	if !hasEntry {
		t.Fatal("release wrote no ledger credit")
	}
}

func TestReleaseTwiceCreditsOnce(t *testing.T) {
	f := newFixture(t)
	svc := newEscrowService(f)
	scene := seedHeldEscrow(t, f)

	if err := svc.Release(context.Background(), scene.escrow.ID, scene.payer.ID, ""); err != nil {
		t.Fatalf("first release: %v", err)
	}
	if err := svc.Release(context.Background(), scene.escrow.ID, scene.payer.ID, ""); !errors.Is(err, utils.ErrInvalidState) {
		t.Fatalf("second release should hit ErrInvalidState, got %v", err)
	}

	payee, err := f.users.FindByID(context.Background(), scene.payee.ID)
	if err != nil || payee == nil {
		t.Fatalf("load payee: %v", err)
	}
	if payee.AvailableBalance != 9_000 {
		t.Fatalf("second release changed the balance: %d", payee.AvailableBalance)
	}
}

func TestReleaseByNonPayerIsUnauthorized(t *testing.T) {
	f := newFixture(t)
	svc := newEscrowService(f)
	scene := seedHeldEscrow(t, f)

	// Not even the payee may release their own escrow.
	if err := svc.Release(context.Background(), scene.escrow.ID, scene.payee.ID, ""); !errors.Is(err, utils.ErrUnauthorized) {
		t.Fatalf("payee release should be unauthorized, got %v", err)
	}

	stranger := f.seedUser(t, db_models.UserTypeClient, 0)
	if err := svc.Release(context.Background(), scene.escrow.ID, stranger.ID, ""); !errors.Is(err, utils.ErrUnauthorized) {
		t.Fatalf("stranger release should be unauthorized, got %v", err)
	}

	escrow, err := f.escrows.FindByID(context.Background(), scene.escrow.ID)
	if err != nil || escrow == nil {
		t.Fatalf("load escrow: %v", err)
	}
	if escrow.Status != db_models.EscrowStatusHeld {
		t.Fatalf("unauthorized release moved escrow to %s", escrow.Status)
	}
}

func TestReleaseUnknownEscrowIsNotFound(t *testing.T) {
	f := newFixture(t)
	svc := newEscrowService(f)
	requester := f.seedUser(t, db_models.UserTypeClient, 0)

	err := svc.Release(context.Background(), uuid.New(), requester.ID, "")
	if !errors.Is(err, utils.ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestDisputeThenReleaseResolvesForPayee(t *testing.T) {
	f := newFixture(t)
	svc := newEscrowService(f)
	scene := seedHeldEscrow(t, f)

	if err := svc.Dispute(context.Background(), scene.escrow.ID, scene.payee.ID, "deliverable rejected"); err != nil {
		t.Fatalf("dispute: %v", err)
	}

	escrow, err := f.escrows.FindByID(context.Background(), scene.escrow.ID)
	if err != nil || escrow == nil {
		t.Fatalf("load escrow: %v", err)
	}
	if escrow.Status != db_models.EscrowStatusDisputed || escrow.DisputeReason != "deliverable rejected" {
		t.Fatalf("dispute not recorded: %+v", escrow)
	}

	// A second dispute has nothing held to flip.
	if err := svc.Dispute(context.Background(), scene.escrow.ID, scene.payer.ID, "me too"); !errors.Is(err, utils.ErrInvalidState) {
		t.Fatalf("double dispute should hit ErrInvalidState, got %v", err)
	}

	if err := svc.Release(context.Background(), scene.escrow.ID, scene.payer.ID, "resolved"); err != nil {
		t.Fatalf("release after dispute: %v", err)
	}

	payee, err := f.users.FindByID(context.Background(), scene.payee.ID)
	if err != nil || payee == nil {
		t.Fatalf("load payee: %v", err)
	}
	if payee.AvailableBalance != 9_000 {
		t.Fatalf("dispute resolution did not pay out: balance=%d", payee.AvailableBalance)
	}
}

func TestDisputeByStrangerIsUnauthorized(t *testing.T) {
	f := newFixture(t)
	svc := newEscrowService(f)
	scene := seedHeldEscrow(t, f)

	stranger := f.seedUser(t, db_models.UserTypeStudent, 0)
	if err := svc.Dispute(context.Background(), scene.escrow.ID, stranger.ID, ""); !errors.Is(err, utils.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
}

func TestRefundFlipsPaymentAndLeavesPayeeAlone(t *testing.T) {
	f := newFixture(t)
	svc := newEscrowService(f)
	scene := seedHeldEscrow(t, f)

	if err := svc.Refund(context.Background(), scene.escrow.ID, scene.payer.ID, "project cancelled"); err != nil {
		t.Fatalf("refund: %v", err)
	}

	escrow, err := f.escrows.FindByID(context.Background(), scene.escrow.ID)
	if err != nil || escrow == nil {
		t.Fatalf("load escrow: %v", err)
	}
	if escrow.Status != db_models.EscrowStatusRefunded {
		t.Fatalf("escrow status = %s, want refunded", escrow.Status)
	}

	payment, err := f.payments.FindByID(context.Background(), scene.payment.ID)
	if err != nil || payment == nil {
		t.Fatalf("load payment: %v", err)
	}
	if payment.Status != db_models.PaymentStatusRefunded {
		t.Fatalf("payment status = %s, want refunded", payment.Status)
	}

	payee, err := f.users.FindByID(context.Background(), scene.payee.ID)
	if err != nil || payee == nil {
		t.Fatalf("load payee: %v", err)
	}
	if payee.TotalEarnings != 0 || payee.AvailableBalance != 0 {
		t.Fatal("refund touched the payee's balance")
	}

	// A refunded escrow can no longer be released.
	if err := svc.Release(context.Background(), scene.escrow.ID, scene.payer.ID, ""); !errors.Is(err, utils.ErrInvalidState) {
		t.Fatalf("release after refund should hit ErrInvalidState, got %v", err)
	}
}

func TestRefundByPayeeIsUnauthorized(t *testing.T) {
	f := newFixture(t)
	svc := newEscrowService(f)
	scene := seedHeldEscrow(t, f)

	if err := svc.Refund(context.Background(), scene.escrow.ID, scene.payee.ID, ""); !errors.Is(err, utils.ErrUnauthorized) {
		t.Fatalf("want ErrUnauthorized, got %v", err)
	}
}
