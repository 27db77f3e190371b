// Package services wires the generation engine to persistence.
package services

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"seo-forge/internal/generator"
	"seo-forge/internal/models"
	"seo-forge/internal/seo"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ArticlesService generates, stores and rescores articles.
type ArticlesService struct {
	db        *gorm.DB
	generator *generator.Generator
	analyzer  *seo.Analyzer
}

// NewArticlesService creates a new articles service.
func NewArticlesService(db *gorm.DB, gen *generator.Generator) *ArticlesService {
	return &ArticlesService{
		db:        db,
		generator: gen,
		analyzer:  seo.NewAnalyzer(),
	}
}

// Generate runs the generation pipeline, persists the resulting article and
// attributes it to userID when one is given. The returned article carries its
// fresh ScoreReport.
func (s *ArticlesService) Generate(source models.SourceDocument, config models.GenerationConfig, userID *uuid.UUID) (*models.Article, error) {
	article, err := s.generator.GenerateArticle(source, config)
	if err != nil {
		return nil, err
	}

	article.UserID = userID
	if err := s.db.Create(article).Error; err != nil {
		return nil, fmt.Errorf("failed to save article: %w", err)
	}

	if userID != nil {
		if err := s.db.Model(&models.User{}).
			Where("id = ?", *userID).
			UpdateColumn("articles_generated", gorm.Expr("articles_generated + 1")).Error; err != nil {
			// Stats are best-effort; the article itself is already saved.
			log.Printf("Failed to update generation stats for user %s: %v", userID, err)
		}
	}

	return article, nil
}

// Get returns one article with its score report recomputed from the current
// body.
func (s *ArticlesService) Get(id uuid.UUID) (*models.Article, error) {
	var article models.Article
	if err := s.db.Where("id = ?", id).First(&article).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.ErrArticleNotFound
		}
		return nil, err
	}

	article.Report = s.analyzer.Score(article.Body, article.PrimaryKeyword, article.SecondaryKeywords)
	return &article, nil
}

// List returns articles newest-first, optionally filtered to one owner,
// along with the total row count for pagination.
func (s *ArticlesService) List(userID *uuid.UUID, limit, offset int) ([]models.Article, int64, error) {
	query := s.db.Model(&models.Article{})
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var articles []models.Article
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&articles).Error; err != nil {
		return nil, 0, err
	}

	return articles, total, nil
}

// ArticleEdit carries the fields the editor is allowed to change. Nil fields
// are left untouched.
type ArticleEdit struct {
	Title           *string `json:"title"`
	MetaDescription *string `json:"meta_description"`
	Body            *string `json:"body"`
}

// Update applies an edit to an article, recounts its words and rescores the
// body against the stored keywords. Keywords themselves are immutable.
func (s *ArticlesService) Update(id uuid.UUID, edit ArticleEdit) (*models.Article, error) {
	article, err := s.Get(id)
	if err != nil {
		return nil, err
	}

	if edit.Title != nil {
		article.Title = strings.TrimSpace(*edit.Title)
	}
	if edit.MetaDescription != nil {
		article.MetaDescription = strings.TrimSpace(*edit.MetaDescription)
	}
	if edit.Body != nil {
		article.Body = *edit.Body
	}

	article.WordCount = len(strings.Fields(article.Body))
	article.Report = s.analyzer.Score(article.Body, article.PrimaryKeyword, article.SecondaryKeywords)
	article.Score = article.Report.Score
	article.Grade = article.Report.Grade

	if err := s.db.Save(article).Error; err != nil {
		return nil, fmt.Errorf("failed to save article: %w", err)
	}

	return article, nil
}

// Rescore recomputes the score report for an article without mutating it.
func (s *ArticlesService) Rescore(id uuid.UUID) (*models.ScoreReport, error) {
	article, err := s.Get(id)
	if err != nil {
		return nil, err
	}
	return article.Report, nil
}

// ScoreText scores arbitrary body text without touching storage.
func (s *ArticlesService) ScoreText(body, primaryKeyword string, secondaryKeywords []string) *models.ScoreReport {
	return s.analyzer.Score(body, primaryKeyword, secondaryKeywords)
}

// Delete removes an article.
func (s *ArticlesService) Delete(id uuid.UUID) error {
	result := s.db.Where("id = ?", id).Delete(&models.Article{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return models.ErrArticleNotFound
	}
	return nil
}
