// Package firestore implements the product repository against the Firestore
// document store, reached through the Firebase app.
package firestore

import (
	"context"
	"log/slog"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"google.golang.org/api/iterator"
	"google.golang.org/api/option"

	"renteasy/config"
	"renteasy/internal/domain/entity"
	"renteasy/internal/domain/repository"
)

// productDoc is the document shape stored in the collection. The product id
// is the document key and never appears in the fields.
type productDoc struct {
	Name        string   `firestore:"name"`
	Category    string   `firestore:"category"`
	Price       float64  `firestore:"price"`
	Description string   `firestore:"description"`
	Image       string   `firestore:"image"`
	Available   bool     `firestore:"available"`
	Features    []string `firestore:"features"`
}

func docFromDraft(draft entity.ProductDraft) productDoc {
	return productDoc{
		Name:        draft.Name,
		Category:    string(draft.Category),
		Price:       draft.Price,
		Description: draft.Description,
		Image:       draft.Image,
		Available:   draft.Available,
		Features:    draft.Features,
	}
}

func (d productDoc) toEntity(id string) entity.Product {
	return entity.Product{
		ID:          id,
		Name:        d.Name,
		Category:    entity.Category(d.Category),
		Price:       d.Price,
		Description: d.Description,
		Image:       d.Image,
		Available:   d.Available,
		Features:    d.Features,
	}
}

// fieldsToMap renders the replacement field set for a merge write, so the
// remote patch only touches the listed fields.
func fieldsToMap(fields entity.ProductFields) map[string]any {
	return map[string]any{
		"name":        fields.Name,
		"category":    string(fields.Category),
		"price":       fields.Price,
		"description": fields.Description,
		"image":       fields.Image,
		"available":   fields.Available,
		"features":    fields.Features,
	}
}

type productRepository struct {
	client     *firestore.Client
	collection string
}

// Params holds dependencies for the product repository, injected by Fx.
type Params struct {
	fx.In
	fx.Lifecycle

	Ctx    context.Context
	Config *config.Config
	Logger *slog.Logger
}

// NewProductRepository creates the Firestore-backed product repository.
// Firestore is optional: without configuration the storefront runs entirely
// off the local mirror, so a nil repository is returned.
func NewProductRepository(params Params) (repository.ProductRepository, error) {
	cfg := params.Config.Firestore
	if cfg == nil {
		params.Logger.Info("Firestore not configured, catalog runs mirror-only")

		return nil, nil
	}

	var opts []option.ClientOption
	if cfg.CredentialsPath != "" {
		opts = append(opts, option.WithCredentialsFile(cfg.CredentialsPath))
	}

	app, err := firebase.NewApp(params.Ctx, &firebase.Config{ProjectID: cfg.ProjectID}, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "initialize Firebase app")
	}

	client, err := app.Firestore(params.Ctx)
	if err != nil {
		return nil, errors.Wrap(err, "get Firestore client")
	}

	params.Append(fx.Hook{
		OnStop: func(context.Context) error {
			params.Logger.Info("Closing Firestore client")

			return errors.WithStack(client.Close())
		},
	})

	return &productRepository{
		client:     client,
		collection: cfg.Collection,
	}, nil
}

// ListAll retrieves every product document in the collection.
func (r *productRepository) ListAll(ctx context.Context) ([]entity.Product, error) {
	iter := r.client.Collection(r.collection).Documents(ctx)
	defer iter.Stop()

	var products []entity.Product
	for {
		snapshot, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "iterate product collection")
		}

		var doc productDoc
		if err := snapshot.DataTo(&doc); err != nil {
			return nil, errors.Wrapf(err, "decode product document %s", snapshot.Ref.ID)
		}

		products = append(products, doc.toEntity(snapshot.Ref.ID))
	}

	return products, nil
}

// Insert stores a new product document and returns the store-issued id.
func (r *productRepository) Insert(ctx context.Context, draft entity.ProductDraft) (string, error) {
	ref, _, err := r.client.Collection(r.collection).Add(ctx, docFromDraft(draft))
	if err != nil {
		return "", errors.Wrap(err, "insert product document")
	}

	return ref.ID, nil
}

// Patch merges the listed fields into an existing document.
func (r *productRepository) Patch(ctx context.Context, id string, fields entity.ProductFields) error {
	_, err := r.client.Collection(r.collection).Doc(id).Set(ctx, fieldsToMap(fields), firestore.MergeAll)
	if err != nil {
		return errors.Wrapf(err, "patch product document %s", id)
	}

	return nil
}

// Remove deletes the document. Firestore deletes are idempotent, matching
// the contract.
func (r *productRepository) Remove(ctx context.Context, id string) error {
	if _, err := r.client.Collection(r.collection).Doc(id).Delete(ctx); err != nil {
		return errors.Wrapf(err, "delete product document %s", id)
	}

	return nil
}
