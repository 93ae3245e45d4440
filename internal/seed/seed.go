package seed

import (
	"fmt"

	"quill/internal/models"

	"gorm.io/gorm"
)

// Seeder populates the database with demo users, posts, and comments.
type Seeder struct {
	db      *gorm.DB
	factory *Factory
}

// NewSeeder creates a Seeder bound to the provided Gorm DB.
func NewSeeder(db *gorm.DB) *Seeder {
	return &Seeder{db: db, factory: NewFactory(db)}
}

// ClearAll removes all seeded rows. Comments go first so foreign keys
// stay satisfied.
func (s *Seeder) ClearAll() error {
	for _, model := range []any{&models.Comment{}, &models.Post{}, &models.User{}} {
		if err := s.db.Unscoped().Where("1 = 1").Delete(model).Error; err != nil {
			return fmt.Errorf("clearing %T: %w", model, err)
		}
	}
	return nil
}

// Run seeds numUsers users with numPosts posts spread among them, then
// sprinkles comments and one level of replies over the published posts.
func (s *Seeder) Run(numUsers, numPosts int) error {
	users := make([]*models.User, 0, numUsers)
	for i := 0; i < numUsers; i++ {
		user, err := s.factory.CreateUser()
		if err != nil {
			return fmt.Errorf("creating user: %w", err)
		}
		users = append(users, user)
	}

	posts := make([]*models.Post, 0, numPosts)
	for i := 0; i < numPosts; i++ {
		author := users[s.factory.rand.Intn(len(users))]
		post, err := s.factory.CreatePost(author)
		if err != nil {
			return fmt.Errorf("creating post: %w", err)
		}
		posts = append(posts, post)
	}

	for _, post := range posts {
		if !post.IsPublished() {
			continue
		}

		numComments := s.factory.rand.Intn(6)
		for i := 0; i < numComments; i++ {
			commenter := users[s.factory.rand.Intn(len(users))]
			comment, err := s.factory.CreateComment(commenter, post, nil)
			if err != nil {
				return fmt.Errorf("creating comment: %w", err)
			}

			// About a third of top-level comments get a reply.
			if s.factory.rand.Intn(3) == 0 {
				replier := users[s.factory.rand.Intn(len(users))]
				if _, err := s.factory.CreateComment(replier, post, comment); err != nil {
					return fmt.Errorf("creating reply: %w", err)
				}
			}
		}
	}

	return nil
}
