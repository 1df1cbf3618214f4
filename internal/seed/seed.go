// Package seed loads the demo marketing content so a fresh deployment renders
// something meaningful. Seeding is an upsert: re-running it refreshes the
// fixtures without duplicating them. It never touches users or sessions; the
// admin account comes from the cmd/api bootstrap.
package seed

import (
	"log/slog"

	"github.com/ledger1-hq/website/backend/internal/domain"
	"github.com/ledger1-hq/website/backend/internal/repository"
)

func Run(repo *repository.Repository, logger *slog.Logger) error {
	seeded := 0

	for _, article := range helpArticles {
		if err := repo.UpsertDocument(domain.DocTypeHelpArticle, article.ID, article); err != nil {
			return err
		}
		seeded++
	}

	for _, doc := range documentation {
		if err := repo.UpsertDocument(domain.DocTypeDocumentation, doc.ID, doc); err != nil {
			return err
		}
		seeded++
	}

	for _, video := range videos {
		if err := repo.UpsertDocument(domain.DocTypeVideo, video.ID, video); err != nil {
			return err
		}
		seeded++
	}

	for _, career := range careers {
		if err := repo.UpsertDocument(domain.DocTypeCareer, career.ID, career); err != nil {
			return err
		}
		seeded++
	}

	for _, post := range blogPosts {
		if err := repo.UpsertDocument(domain.DocTypeBlogPost, post.Slug, post); err != nil {
			return err
		}
		seeded++
	}

	logger.Info("seeded demo content", "documents", seeded)
	return nil
}
