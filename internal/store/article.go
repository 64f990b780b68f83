package store

import (
	"context"
	"fmt"

	"artigos-api/internal/database"
	"artigos-api/internal/model"
)

func GetArticleByID(ctx context.Context, db database.DB, articleID int) (*model.Article, error) {
	row := db.QueryRow(ctx,
		`SELECT id, title, description, source_url, user_id, created_at
		 FROM articles WHERE id = $1`,
		articleID,
	)
	a := &model.Article{}
	if err := row.Scan(
		&a.ID,
		&a.Title,
		&a.Description,
		&a.SourceURL,
		&a.UserID,
		&a.CreatedAt,
	); err != nil {
		return nil, fmt.Errorf("GetArticleByID: %w", err)
	}
	return a, nil
}

func ListArticles(ctx context.Context, db database.DB) ([]model.Article, error) {
	rows, err := db.Query(ctx,
		`SELECT id, title, description, source_url, user_id, created_at
		 FROM articles ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("ListArticles: %w", err)
	}
	defer rows.Close()

	var articles []model.Article
	for rows.Next() {
		var a model.Article
		if err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.Description,
			&a.SourceURL,
			&a.UserID,
			&a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListArticles: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListArticles: %w", err)
	}
	return articles, nil
}

func ListArticlesByUser(ctx context.Context, db database.DB, userID int) ([]model.Article, error) {
	rows, err := db.Query(ctx,
		`SELECT id, title, description, source_url, user_id, created_at
		 FROM articles WHERE user_id = $1 ORDER BY id`,
		userID,
	)
	if err != nil {
		return nil, fmt.Errorf("ListArticlesByUser: %w", err)
	}
	defer rows.Close()

	var articles []model.Article
	for rows.Next() {
		var a model.Article
		if err := rows.Scan(
			&a.ID,
			&a.Title,
			&a.Description,
			&a.SourceURL,
			&a.UserID,
			&a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("ListArticlesByUser: %w", err)
		}
		articles = append(articles, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("ListArticlesByUser: %w", err)
	}
	return articles, nil
}

func CreateArticle(ctx context.Context, db database.DB, a *model.Article) (*model.Article, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO articles (title, description, source_url, user_id)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id, created_at`,
		a.Title,
		a.Description,
		a.SourceURL,
		a.UserID,
	)
	if err := row.Scan(&a.ID, &a.CreatedAt); err != nil {
		return nil, fmt.Errorf("CreateArticle: %w", err)
	}
	return a, nil
}

func UpdateArticle(ctx context.Context, db database.DB, a *model.Article) error {
	_, err := db.Exec(ctx,
		`UPDATE articles SET title = $1, description = $2, source_url = $3
		 WHERE id = $4`,
		a.Title,
		a.Description,
		a.SourceURL,
		a.ID,
	)
	if err != nil {
		return fmt.Errorf("UpdateArticle: %w", err)
	}
	return nil
}

func DeleteArticle(ctx context.Context, db database.DB, ID int) error {
	_, err := db.Exec(ctx,
		`DELETE FROM articles WHERE id = $1`,
		ID,
	)
	if err != nil {
		return fmt.Errorf("DeleteArticle: %w", err)
	}
	return nil
}
