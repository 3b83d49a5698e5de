package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"

	"github.com/focoteam/foco-backend/internal/domain"
	"github.com/focoteam/foco-backend/internal/repository"
)

type profileRepository struct {
	db     *sqlx.DB
	logger *zap.Logger
}

func NewProfileRepository(db *sqlx.DB, logger *zap.Logger) repository.ProfileRepository {
	return &profileRepository{db: db, logger: logger}
}

// profileRow mirrors the profiles projection; the attribute bag stays raw
// JSON until the role is known.
type profileRow struct {
	ID               uuid.UUID `db:"id"`
	Username         string    `db:"username"`
	FullName         string    `db:"full_name"`
	Role             string    `db:"role"`
	Bio              string    `db:"bio"`
	Location         string    `db:"location"`
	AvatarURL        string    `db:"avatar_url"`
	CoverURL         string    `db:"cover_url"`
	SubscriptionTier string    `db:"subscription_tier"`
	Attributes       []byte    `db:"attributes"`
	PortfolioCount   int       `db:"portfolio_count"`
	PortfolioPreview string    `db:"portfolio_preview"`
	CreatedAt        time.Time `db:"created_at"`
	UpdatedAt        time.Time `db:"updated_at"`
}

const profileColumns = `
	p.id, p.username, p.full_name, p.role, p.bio, p.location,
	p.avatar_url, p.cover_url, p.subscription_tier, p.attributes,
	COALESCE(pc.cnt, 0) AS portfolio_count,
	COALESCE(pv.image_url, '') AS portfolio_preview,
	p.created_at, p.updated_at`

const profileJoins = `
	LEFT JOIN (
		SELECT profile_id, COUNT(*) AS cnt
		FROM portfolio_images
		GROUP BY profile_id
	) pc ON pc.profile_id = p.id
	LEFT JOIN (
		SELECT DISTINCT ON (profile_id) profile_id, image_url
		FROM portfolio_images
		ORDER BY profile_id, sort_order ASC
	) pv ON pv.profile_id = p.id`

func (r *profileRepository) List(ctx context.Context, sel repository.Selection) ([]domain.Profile, error) {
	query := `SELECT` + profileColumns + `
		FROM profiles p` + profileJoins + `
		WHERE 1=1`
	args := []interface{}{}
	argCount := 1

	if sel.Role != "" {
		query += fmt.Sprintf(" AND p.role = $%d", argCount)
		args = append(args, sel.Role)
		argCount++
	}

	if sel.Location != "" {
		query += fmt.Sprintf(" AND p.location ILIKE $%d", argCount)
		args = append(args, likePattern(sel.Location))
		argCount++
	}

	if sel.Query != "" {
		query += fmt.Sprintf(
			" AND (p.full_name ILIKE $%d OR p.bio ILIKE $%d OR p.location ILIKE $%d OR p.username ILIKE $%d)",
			argCount, argCount, argCount, argCount,
		)
		args = append(args, likePattern(sel.Query))
		argCount++
	}

	// Snapshot order only; the caller sorts.
	query += " ORDER BY p.created_at DESC, p.id ASC"

	var rows []profileRow
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}

	return r.toProfiles(rows), nil
}

func (r *profileRepository) GetByUsername(ctx context.Context, username string) (*domain.Profile, []domain.PortfolioImage, error) {
	query := `SELECT` + profileColumns + `
		FROM profiles p` + profileJoins + `
		WHERE p.username = $1`

	var row profileRow
	if err := r.db.GetContext(ctx, &row, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil, domain.ErrProfileNotFound
		}
		return nil, nil, fmt.Errorf("get profile by username: %w", err)
	}

	profile, err := r.toProfile(row)
	if err != nil {
		return nil, nil, err
	}

	var images []domain.PortfolioImage
	imgQuery := `
		SELECT id, profile_id, image_url, alt_text, sort_order
		FROM portfolio_images
		WHERE profile_id = $1
		ORDER BY sort_order ASC, id ASC`
	if err := r.db.SelectContext(ctx, &images, imgQuery, profile.ID); err != nil {
		return nil, nil, fmt.Errorf("list portfolio images: %w", err)
	}

	return profile, images, nil
}

func (r *profileRepository) Locations(ctx context.Context) ([]string, error) {
	var locations []string
	query := `SELECT DISTINCT location FROM profiles WHERE location <> '' ORDER BY location ASC`
	if err := r.db.SelectContext(ctx, &locations, query); err != nil {
		return nil, fmt.Errorf("list locations: %w", err)
	}
	return locations, nil
}

func (r *profileRepository) toProfiles(rows []profileRow) []domain.Profile {
	profiles := make([]domain.Profile, 0, len(rows))
	for _, row := range rows {
		profile, err := r.toProfile(row)
		if err != nil {
			// A malformed attribute bag hides one record, not the search.
			r.logger.Warn("skipping profile with undecodable attributes",
				zap.String("profile_id", row.ID.String()),
				zap.Error(err),
			)
			continue
		}
		profiles = append(profiles, *profile)
	}
	return profiles
}

func (r *profileRepository) toProfile(row profileRow) (*domain.Profile, error) {
	attrs, err := domain.DecodeAttributes(domain.Role(row.Role), row.Attributes)
	if err != nil {
		return nil, err
	}
	return &domain.Profile{
		ID:               row.ID,
		Username:         row.Username,
		FullName:         row.FullName,
		Role:             domain.Role(row.Role),
		Bio:              row.Bio,
		Location:         row.Location,
		AvatarURL:        row.AvatarURL,
		CoverURL:         row.CoverURL,
		SubscriptionTier: domain.SubscriptionTier(row.SubscriptionTier),
		Attributes:       attrs,
		PortfolioCount:   row.PortfolioCount,
		PortfolioPreview: row.PortfolioPreview,
		CreatedAt:        row.CreatedAt,
		UpdatedAt:        row.UpdatedAt,
	}, nil
}

// likePattern wraps s for a substring ILIKE match, escaping the pattern
// metacharacters so user input stays literal.
func likePattern(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + replacer.Replace(s) + "%"
}
