package repos

import (
	"context"

	"github.com/jmoiron/sqlx"

	"hooksaurus/internal/domain"
)

type ArticleRepo struct{ db sqlx.ExtContext }

func NewArticleRepo(db sqlx.ExtContext) *ArticleRepo { return &ArticleRepo{db: db} }

const articleColumns = `
    article_id, slug, title, description, body, tag_list, author_id,
    created_at, updated_at, etag`

func (r *ArticleRepo) List(ctx context.Context, limit, offset int) ([]domain.Article, error) {
	var out []domain.Article
	err := sqlx.SelectContext(ctx, r.db, &out, `SELECT`+articleColumns+` FROM article`+newestFirst, limit, offset)
	return out, err
}

func (r *ArticleRepo) Insert(ctx context.Context, a *domain.Article) error {
	stamp(&a.ID, &a.CreatedAt, &a.UpdatedAt, &a.Etag)
	_, err := sqlx.NamedExecContext(ctx, r.db, `
		INSERT INTO article (`+articleColumns+`)
		VALUES (
		  :article_id, :slug, :title, :description, :body, :tag_list, :author_id,
		  :created_at, :updated_at, :etag)`, a)
	return err
}
