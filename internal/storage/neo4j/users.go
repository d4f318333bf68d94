package neo4j

import (
	"context"
	"fmt"
	"strings"

	"github.com/honeycarbs/jobboard/internal/domain"
	"github.com/honeycarbs/jobboard/internal/domain/session"
	pkgneo4j "github.com/honeycarbs/jobboard/pkg/neo4j"
)

var _ session.UserRepository = (*UserRepository)(nil)

// UserRepository stores accounts as (:User) nodes keyed by normalized email
type UserRepository struct {
	client *pkgneo4j.Client
}

func NewUserRepository(client *pkgneo4j.Client) *UserRepository {
	return &UserRepository{client: client}
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (domain.User, error) {
	recs, err := r.client.Read(ctx, `
		MATCH (u:User {emailKey: $key})
		RETURN u {.*} AS user
	`, map[string]any{"key": emailKey(email)})
	if err != nil {
		return domain.User{}, fmt.Errorf("neo4j: find user: %w", err)
	}
	if len(recs) == 0 {
		return domain.User{}, domain.ErrNotFound
	}
	return decodeUser(props(recs[0], "user")), nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (domain.User, error) {
	recs, err := r.client.Read(ctx, `
		MATCH (u:User {id: $id})
		RETURN u {.*} AS user
	`, map[string]any{"id": id})
	if err != nil {
		return domain.User{}, fmt.Errorf("neo4j: get user: %w", err)
	}
	if len(recs) == 0 {
		return domain.User{}, domain.ErrNotFound
	}
	return decodeUser(props(recs[0], "user")), nil
}

// Create fails with domain.ErrEmailTaken when the normalized email exists
func (r *UserRepository) Create(ctx context.Context, u domain.User) error {
	recs, err := r.client.Write(ctx, `
		OPTIONAL MATCH (existing:User {emailKey: $user.emailKey})
		WITH existing, $user AS user
		WHERE existing IS NULL
		CREATE (u:User)
		SET u = user
		RETURN count(u) AS created
	`, map[string]any{"user": encodeUser(u)})
	if err != nil {
		return fmt.Errorf("neo4j: create user: %w", err)
	}
	if count(recs, "created") == 0 {
		return domain.ErrEmailTaken
	}
	return nil
}

// Seed merges users by email, leaving existing accounts untouched
func (r *UserRepository) Seed(ctx context.Context, users []domain.User) error {
	data := make([]map[string]any, 0, len(users))
	for _, u := range users {
		data = append(data, encodeUser(u))
	}
	_, err := r.client.Write(ctx, `
		UNWIND $users AS user
		MERGE (u:User {emailKey: user.emailKey})
		ON CREATE SET u = user
	`, map[string]any{"users": data})
	if err != nil {
		return fmt.Errorf("neo4j: seed users: %w", err)
	}
	return nil
}

func encodeUser(u domain.User) map[string]any {
	return map[string]any{
		"id":           u.ID,
		"email":        u.Email,
		"emailKey":     emailKey(u.Email),
		"name":         u.Name,
		"role":         string(u.Role),
		"company":      u.Company,
		"title":        u.Title,
		"location":     u.Location,
		"bio":          u.Bio,
		"skills":       orEmpty(u.Skills),
		"experience":   u.Experience,
		"createdAt":    u.CreatedAt.UTC(),
		"passwordHash": u.PasswordHash,
	}
}

func decodeUser(p map[string]any) domain.User {
	u := domain.User{
		ID:    str(p, "id"),
		Email: str(p, "email"),
		Name:  str(p, "name"),
		Role:  domain.Role(str(p, "role")),
		Profile: domain.Profile{
			Company:    str(p, "company"),
			Title:      str(p, "title"),
			Location:   str(p, "location"),
			Bio:        str(p, "bio"),
			Skills:     strList(p, "skills"),
			Experience: str(p, "experience"),
		},
		CreatedAt:    timestamp(p, "createdAt"),
		PasswordHash: str(p, "passwordHash"),
	}
	if len(u.Skills) == 0 {
		u.Skills = nil
	}
	return u
}

func emailKey(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
