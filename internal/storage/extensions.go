package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/teklink/devid/internal/catalog"
	"github.com/teklink/devid/internal/model"
)

// AddExtension upserts one identifier-tree extension entry. The token path is
// lowercased before storage; an existing entry for the same path is replaced,
// matching the tree's overwrite-on-conflict merge.
func (s *Store) AddExtension(ctx context.Context, ext model.Extension) error {
	if len(ext.Path) == 0 {
		return fmt.Errorf("extension path cannot be empty")
	}
	if ext.Family == "" {
		return fmt.Errorf("extension family cannot be empty")
	}

	tokens := make([]string, len(ext.Path))
	for i, t := range ext.Path {
		token := strings.ToLower(strings.TrimSpace(t))
		if token == "" {
			return fmt.Errorf("extension path contains an empty token")
		}
		tokens[i] = token
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO ua_extensions (path, family) VALUES (?, ?)
		 ON CONFLICT(path) DO UPDATE SET family = excluded.family`,
		strings.Join(tokens, " "), string(ext.Family))
	if err != nil {
		return fmt.Errorf("failed to save extension: %w", err)
	}
	return nil
}

// ListExtensions returns every extension entry in insertion order.
func (s *Store) ListExtensions(ctx context.Context) ([]model.Extension, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT path, family FROM ua_extensions ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query extensions: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var extensions []model.Extension
	for rows.Next() {
		var path, family string
		if err := rows.Scan(&path, &family); err != nil {
			return nil, fmt.Errorf("failed to scan extension: %w", err)
		}
		extensions = append(extensions, model.Extension{
			Path:   strings.Fields(path),
			Family: model.Family(family),
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read extensions: %w", err)
	}
	return extensions, nil
}

// AddBillingOverride upserts a billing code override for a platform/product pair.
func (s *Store) AddBillingOverride(ctx context.Context, o catalog.Override) error {
	if o.Product == "" {
		return fmt.Errorf("override product cannot be empty")
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO billing_overrides (platform, product, code) VALUES (?, ?, ?)
		 ON CONFLICT(platform, product) DO UPDATE SET code = excluded.code`,
		string(o.Platform), o.Product, o.Code)
	if err != nil {
		return fmt.Errorf("failed to save billing override: %w", err)
	}
	return nil
}

// ListBillingOverrides returns every billing override.
func (s *Store) ListBillingOverrides(ctx context.Context) ([]catalog.Override, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT platform, product, code FROM billing_overrides ORDER BY platform, product`)
	if err != nil {
		return nil, fmt.Errorf("failed to query billing overrides: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	var overrides []catalog.Override
	for rows.Next() {
		var platform, product, code string
		if err := rows.Scan(&platform, &product, &code); err != nil {
			return nil, fmt.Errorf("failed to scan billing override: %w", err)
		}
		overrides = append(overrides, catalog.Override{
			Platform: model.Platform(platform),
			Product:  product,
			Code:     code,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read billing overrides: %w", err)
	}
	return overrides, nil
}
