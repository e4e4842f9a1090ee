package database

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"blog/internal/models"
)

var (
	ErrPostNotFound     = errors.New("пост не найден")
	ErrShortTitle       = errors.New("заголовок должен содержать минимум 5 символов")
	ErrLongTitle        = errors.New("заголовок не должен превышать 200 символов")
	ErrEmptyContent     = errors.New("содержимое поста не может быть пустым")
	ErrLongContent      = errors.New("содержимое поста не должно превышать 10000 символов")
	ErrPostCreateFailed = errors.New("ошибка создания поста")
	ErrPostUpdateFailed = errors.New("ошибка обновления поста")
	ErrPostDeleteFailed = errors.New("ошибка удаления поста")
	ErrNotPostAuthor    = errors.New("только автор может изменять пост")
)

type PostService struct {
	db *Database
}

func NewPostService(db *Database) *PostService {
	return &PostService{db: db}
}

// CreatePost создает новый пост
func (ps *PostService) CreatePost(title, content string, userID int) (*models.Post, error) {
	if err := ps.validatePostData(title, content); err != nil {
		return nil, err
	}

	query := `INSERT INTO posts (title, content, user_id, created, updated)
			  VALUES (?, ?, ?, ?, ?) RETURNING id, created, updated`

	var post models.Post
	now := time.Now()

	err := ps.db.DBConn.QueryRow(query, title, content, userID, now, now).Scan(
		&post.ID, &post.Created, &post.Updated)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPostCreateFailed, err)
	}

	post.Title = title
	post.Content = content
	post.UserID = userID

	return &post, nil
}

// GetPost получает пост по ID с информацией об авторе
func (ps *PostService) GetPost(id int) (*models.Post, error) {
	query := `SELECT p.id, p.title, p.content, p.user_id, p.created, p.updated, u.username
			  FROM posts p
			  JOIN users u ON p.user_id = u.id
			  WHERE p.id = ?`

	var post models.Post
	err := ps.db.DBConn.QueryRow(query, id).Scan(
		&post.ID, &post.Title, &post.Content, &post.UserID,
		&post.Created, &post.Updated, &post.Username)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, ErrPostNotFound
		}
		return nil, err
	}

	return &post, nil
}

// GetAllPosts получает все посты, новые первыми
func (ps *PostService) GetAllPosts() ([]*models.Post, error) {
	query := `SELECT p.id, p.title, p.content, p.user_id, p.created, p.updated, u.username
			  FROM posts p
			  JOIN users u ON p.user_id = u.id
			  ORDER BY p.created DESC`

	rows, err := ps.db.DBConn.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var posts []*models.Post
	for rows.Next() {
		var post models.Post
		err := rows.Scan(&post.ID, &post.Title, &post.Content, &post.UserID,
			&post.Created, &post.Updated, &post.Username)
		if err != nil {
			return nil, err
		}
		posts = append(posts, &post)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return posts, nil
}

// UpdatePost обновляет пост (только автор может изменять)
func (ps *PostService) UpdatePost(id int, title, content string, userID int) error {
	if err := ps.validatePostData(title, content); err != nil {
		return err
	}

	if err := ps.checkPostAuthor(id, userID); err != nil {
		return err
	}

	query := `UPDATE posts SET title = ?, content = ?, updated = ? WHERE id = ?`
	_, err := ps.db.DBConn.Exec(query, title, content, time.Now(), id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPostUpdateFailed, err)
	}

	return nil
}

// DeletePost удаляет пост (только автор может удалять)
func (ps *PostService) DeletePost(id int, userID int) error {
	if err := ps.checkPostAuthor(id, userID); err != nil {
		return err
	}

	query := `DELETE FROM posts WHERE id = ?`
	result, err := ps.db.DBConn.Exec(query, id)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrPostDeleteFailed, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rowsAffected == 0 {
		return ErrPostNotFound
	}

	return nil
}

// GetPostsCount получает общее количество постов
func (ps *PostService) GetPostsCount() (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM posts`
	err := ps.db.DBConn.QueryRow(query).Scan(&count)
	return count, err
}

// checkPostAuthor различает несуществующий пост и чужой пост
func (ps *PostService) checkPostAuthor(postID, userID int) error {
	var authorID int
	query := `SELECT user_id FROM posts WHERE id = ?`
	err := ps.db.DBConn.QueryRow(query, postID).Scan(&authorID)
	if err != nil {
		if err == sql.ErrNoRows {
			return ErrPostNotFound
		}
		return err
	}
	if authorID != userID {
		return ErrNotPostAuthor
	}
	return nil
}

// validatePostData валидирует данные поста
func (ps *PostService) validatePostData(title, content string) error {
	title = strings.TrimSpace(title)
	content = strings.TrimSpace(content)

	if len(title) < 5 {
		return ErrShortTitle
	}
	if len(title) > 200 {
		return ErrLongTitle
	}
	if len(content) == 0 {
		return ErrEmptyContent
	}
	if len(content) > 10000 {
		return ErrLongContent
	}

	return nil
}
