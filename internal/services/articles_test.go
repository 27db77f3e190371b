package services

import (
	"errors"
	"strings"
	"testing"

	"seo-forge/internal/generator"
	"seo-forge/internal/models"

	"github.com/google/uuid"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("Failed to connect to test database: %v", err)
	}

	if err := models.AutoMigrate(db); err != nil {
		t.Fatalf("Failed to migrate test database: %v", err)
	}

	return db
}

func testConfig() models.GenerationConfig {
	return models.GenerationConfig{
		PrimaryKeyword:    "content marketing",
		SecondaryKeywords: []string{"blogging"},
		ContentType:       models.ContentTypeBlogPost,
		Tone:              models.ToneProfessional,
		TargetLength:      800,
	}
}

func TestGeneratePersistsArticle(t *testing.T) {
	db := setupTestDB(t)
	service := NewArticlesService(db, generator.NewWithSeed(1))

	article, err := service.Generate(models.SourceDocument{}, testConfig(), nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if article.Report == nil {
		t.Fatal("Expected a score report on the generated article")
	}

	var count int64
	db.Model(&models.Article{}).Count(&count)
	if count != 1 {
		t.Errorf("Expected 1 persisted article, found %d", count)
	}

	var stored models.Article
	if err := db.First(&stored, "id = ?", article.ID).Error; err != nil {
		t.Fatalf("Failed to load stored article: %v", err)
	}
	if stored.Title != article.Title || stored.Body != article.Body {
		t.Error("Stored article does not match the returned one")
	}
	if len(stored.SecondaryKeywords) != 1 || stored.SecondaryKeywords[0] != "blogging" {
		t.Errorf("Secondary keywords did not round-trip: %v", stored.SecondaryKeywords)
	}
}

func TestGenerateMissingKeyword(t *testing.T) {
	db := setupTestDB(t)
	service := NewArticlesService(db, generator.NewWithSeed(1))

	config := testConfig()
	config.PrimaryKeyword = ""

	if _, err := service.Generate(models.SourceDocument{}, config, nil); !errors.Is(err, models.ErrMissingPrimaryKeyword) {
		t.Fatalf("Expected ErrMissingPrimaryKeyword, got %v", err)
	}

	var count int64
	db.Model(&models.Article{}).Count(&count)
	if count != 0 {
		t.Errorf("No article should be persisted on validation failure, found %d", count)
	}
}

func TestGenerateUpdatesUserStats(t *testing.T) {
	db := setupTestDB(t)

	users := NewUsersService(db)
	user, err := users.Register("writer", "writer@example.com", "secret123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	service := NewArticlesService(db, generator.NewWithSeed(1))
	if _, err := service.Generate(models.SourceDocument{}, testConfig(), &user.ID); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}
	if _, err := service.Generate(models.SourceDocument{}, testConfig(), &user.ID); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	refreshed, err := users.Profile(user.ID)
	if err != nil {
		t.Fatalf("Profile failed: %v", err)
	}
	if refreshed.ArticlesGenerated != 2 {
		t.Errorf("Expected 2 generated articles on the profile, got %d", refreshed.ArticlesGenerated)
	}
}

func TestGetRecomputesReport(t *testing.T) {
	db := setupTestDB(t)
	service := NewArticlesService(db, generator.NewWithSeed(1))

	created, err := service.Generate(models.SourceDocument{}, testConfig(), nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	loaded, err := service.Get(created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if loaded.Report == nil {
		t.Fatal("Expected a recomputed score report")
	}
	if loaded.Report.Score != created.Report.Score {
		t.Errorf("Unchanged body rescored differently: %d vs %d", loaded.Report.Score, created.Report.Score)
	}
}

func TestGetNotFound(t *testing.T) {
	db := setupTestDB(t)
	service := NewArticlesService(db, generator.NewWithSeed(1))

	if _, err := service.Get(uuid.New()); !errors.Is(err, models.ErrArticleNotFound) {
		t.Fatalf("Expected ErrArticleNotFound, got %v", err)
	}
}

func TestUpdateRescoresBody(t *testing.T) {
	db := setupTestDB(t)
	service := NewArticlesService(db, generator.NewWithSeed(1))

	created, err := service.Generate(models.SourceDocument{}, testConfig(), nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	newBody := "Nothing about the keyword here at all."
	newTitle := "  Edited Title  "
	updated, err := service.Update(created.ID, ArticleEdit{Title: &newTitle, Body: &newBody})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Title != "Edited Title" {
		t.Errorf("Title was not trimmed: %q", updated.Title)
	}
	if updated.WordCount != len(strings.Fields(newBody)) {
		t.Errorf("Word count not recomputed: %d", updated.WordCount)
	}
	if updated.Score >= created.Score {
		t.Errorf("A keyword-free body should score lower: %d -> %d", created.Score, updated.Score)
	}
	if updated.MetaDescription != created.MetaDescription {
		t.Error("Meta description changed without an edit")
	}

	stored, err := service.Get(created.ID)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if stored.Body != newBody || stored.Score != updated.Score {
		t.Error("Edit was not persisted")
	}
}

func TestListPaginationAndOwnership(t *testing.T) {
	db := setupTestDB(t)
	service := NewArticlesService(db, generator.NewWithSeed(1))

	users := NewUsersService(db)
	owner, err := users.Register("owner", "owner@example.com", "secret123")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	for i := 0; i < 3; i++ {
		if _, err := service.Generate(models.SourceDocument{}, testConfig(), &owner.ID); err != nil {
			t.Fatalf("Generate failed: %v", err)
		}
	}
	if _, err := service.Generate(models.SourceDocument{}, testConfig(), nil); err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	all, total, err := service.List(nil, 10, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 4 || len(all) != 4 {
		t.Errorf("Expected 4 articles in total, got total=%d len=%d", total, len(all))
	}

	owned, total, err := service.List(&owner.ID, 2, 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if total != 3 {
		t.Errorf("Expected owner total of 3, got %d", total)
	}
	if len(owned) != 2 {
		t.Errorf("Expected page of 2, got %d", len(owned))
	}
}

func TestDeleteArticle(t *testing.T) {
	db := setupTestDB(t)
	service := NewArticlesService(db, generator.NewWithSeed(1))

	created, err := service.Generate(models.SourceDocument{}, testConfig(), nil)
	if err != nil {
		t.Fatalf("Generate failed: %v", err)
	}

	if err := service.Delete(created.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if _, err := service.Get(created.ID); !errors.Is(err, models.ErrArticleNotFound) {
		t.Errorf("Expected ErrArticleNotFound after delete, got %v", err)
	}
	if err := service.Delete(created.ID); !errors.Is(err, models.ErrArticleNotFound) {
		t.Errorf("Second delete should report ErrArticleNotFound, got %v", err)
	}
}

func TestScoreTextStateless(t *testing.T) {
	db := setupTestDB(t)
	service := NewArticlesService(db, generator.NewWithSeed(1))

	report := service.ScoreText("short body about seo", "seo", nil)
	if report == nil {
		t.Fatal("Expected a report for ad-hoc scoring")
	}
	if report.WordCount != 4 {
		t.Errorf("Expected word count 4, got %d", report.WordCount)
	}

	var count int64
	db.Model(&models.Article{}).Count(&count)
	if count != 0 {
		t.Errorf("Ad-hoc scoring must not persist anything, found %d rows", count)
	}
}
