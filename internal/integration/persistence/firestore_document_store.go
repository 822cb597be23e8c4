package persistence

import (
	"context"
	"fmt"
	"log/slog"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/homeledger/backend/internal/application/adapter"
	"github.com/homeledger/backend/internal/domain/entity"
	domainerror "github.com/homeledger/backend/internal/domain/error"
	"github.com/homeledger/backend/internal/integration/persistence/model"
)

// FirestoreConfig locates the shared ledger document.
type FirestoreConfig struct {
	ProjectID       string
	CredentialsFile string
	Collection      string
	DocumentID      string
}

// FirestoreDocumentStore implements adapter.DocumentStore on a single
// Firestore document shared by every client of the deployment.
type FirestoreDocumentStore struct {
	client     *firestore.Client
	collection string
	documentID string
}

// NewFirestoreDocumentStore connects to Firestore via the Firebase SDK.
func NewFirestoreDocumentStore(ctx context.Context, cfg FirestoreConfig) (*FirestoreDocumentStore, error) {
	var opts []option.ClientOption
	if cfg.CredentialsFile != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsFile))
	}

	app, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize firebase app: %w", err)
	}

	client, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}

	return &FirestoreDocumentStore{
		client:     client,
		collection: cfg.Collection,
		documentID: cfg.DocumentID,
	}, nil
}

// Close releases the Firestore client.
func (s *FirestoreDocumentStore) Close() error {
	return s.client.Close()
}

func (s *FirestoreDocumentStore) doc() *firestore.DocumentRef {
	return s.client.Collection(s.collection).Doc(s.documentID)
}

// Load fetches the shared document, seeding a default one on first use.
func (s *FirestoreDocumentStore) Load(ctx context.Context) (entity.LedgerDocument, error) {
	snap, err := s.doc().Get(ctx)
	if status.Code(err) == codes.NotFound {
		document := entity.NewLedgerDocument()
		if _, err := s.doc().Set(ctx, model.FromEntityDocument(document)); err != nil {
			return entity.LedgerDocument{}, wrapFirestoreErr("seed ledger document", err)
		}
		slog.Info("seeded empty ledger document",
			"collection", s.collection,
			"document", s.documentID,
		)
		return document, nil
	}
	if err != nil {
		return entity.LedgerDocument{}, wrapFirestoreErr("load ledger document", err)
	}

	var m model.LedgerDocumentModel
	if err := snap.DataTo(&m); err != nil {
		return entity.LedgerDocument{}, fmt.Errorf("failed to decode ledger document: %w", err)
	}
	return m.ToEntity(), nil
}

// Merge writes only the patched top-level fields, leaving the rest of the
// remote document untouched.
func (s *FirestoreDocumentStore) Merge(ctx context.Context, patch adapter.DocumentPatch) error {
	update := make(map[string]interface{}, len(patch.Fields))
	for _, field := range patch.Fields {
		switch field {
		case adapter.FieldTransactions:
			models := make([]model.TransactionModel, len(patch.Transactions))
			for i, t := range patch.Transactions {
				models[i] = model.FromEntityTransaction(t)
			}
			update[string(field)] = models
		case adapter.FieldBorrowings:
			models := make([]model.BorrowingModel, len(patch.Borrowings))
			for i, b := range patch.Borrowings {
				models[i] = model.FromEntityBorrowing(b)
			}
			update[string(field)] = models
		case adapter.FieldBudgets:
			models := make([]model.BudgetModel, len(patch.Budgets))
			for i, b := range patch.Budgets {
				models[i] = model.FromEntityBudget(b)
			}
			update[string(field)] = models
		case adapter.FieldTemplates:
			models := make([]model.TemplateModel, len(patch.Templates))
			for i, t := range patch.Templates {
				models[i] = model.FromEntityTemplate(t)
			}
			update[string(field)] = models
		case adapter.FieldSettings:
			if patch.Settings != nil {
				update[string(field)] = model.FromEntitySettings(*patch.Settings)
			}
		}
	}
	if len(update) == 0 {
		return nil
	}

	if _, err := s.doc().Set(ctx, update, firestore.MergeAll); err != nil {
		return wrapFirestoreErr("merge ledger document", err)
	}
	return nil
}

// Subscribe streams remote snapshots of the shared document until the
// returned stop function or the context cancels it.
func (s *FirestoreDocumentStore) Subscribe(
	ctx context.Context,
	onDocument func(entity.LedgerDocument),
	onError func(error),
) (func(), error) {
	subCtx, cancel := context.WithCancel(ctx)
	iter := s.doc().Snapshots(subCtx)

	go func() {
		defer iter.Stop()
		for {
			snap, err := iter.Next()
			if err != nil {
				if subCtx.Err() != nil {
					return
				}
				onError(wrapFirestoreErr("ledger snapshot stream", err))
				return
			}
			if !snap.Exists() {
				continue
			}
			var m model.LedgerDocumentModel
			if err := snap.DataTo(&m); err != nil {
				onError(fmt.Errorf("failed to decode ledger snapshot: %w", err))
				continue
			}
			onDocument(m.ToEntity())
		}
	}()

	return cancel, nil
}

// wrapFirestoreErr maps transport-level unavailability onto the domain
// sentinel so the ledger store can flip its online flag.
func wrapFirestoreErr(op string, err error) error {
	switch status.Code(err) {
	case codes.Unavailable, codes.DeadlineExceeded:
		return fmt.Errorf("%s: %s: %w", op, err, domainerror.ErrRemoteUnavailable)
	}
	return fmt.Errorf("%s: %w", op, err)
}
