package services

import (
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/yaswanth810/safety-beacon/internal/authz"
	"github.com/yaswanth810/safety-beacon/internal/dto"
	"github.com/yaswanth810/safety-beacon/internal/models"
	"github.com/yaswanth810/safety-beacon/internal/realtime"
	"gorm.io/gorm"
)

var ErrPostNotFound = errors.New("post not found")

const (
	tableForumPosts    = "forum_posts"
	tableForumComments = "forum_comments"
)

type ForumService struct {
	db  *gorm.DB
	hub *realtime.Hub
}

func NewForumService(db *gorm.DB, hub *realtime.Hub) *ForumService {
	return &ForumService{db: db, hub: hub}
}

func (s *ForumService) CreatePost(actor authz.Actor, req *dto.CreatePostRequest) (*models.ForumPost, error) {
	if strings.TrimSpace(req.Title) == "" || strings.TrimSpace(req.Content) == "" {
		return nil, errors.New("title and content are required")
	}

	post := models.ForumPost{
		ID:      uuid.New(),
		UserID:  actor.ID,
		Title:   req.Title,
		Content: req.Content,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}

	s.hub.Publish(tableForumPosts, realtime.ActionInsert, post.ID)
	return &post, nil
}

func (s *ForumService) ListPosts(page, limit int) ([]models.ForumPost, int64, error) {
	var posts []models.ForumPost
	var total int64

	offset := (page - 1) * limit

	if err := s.db.Model(&models.ForumPost{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := s.db.Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&posts).Error
	if err != nil {
		return nil, 0, err
	}
	return posts, total, nil
}

func (s *ForumService) GetPost(postID uuid.UUID) (*models.ForumPost, error) {
	var post models.ForumPost
	if err := s.db.First(&post, "id = ?", postID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return &post, nil
}

func (s *ForumService) UpdatePost(actor authz.Actor, postID uuid.UUID, req *dto.UpdatePostRequest) (*models.ForumPost, error) {
	post, err := s.GetPost(postID)
	if err != nil {
		return nil, err
	}
	if !authz.CanEditForumPost(actor, post) {
		return nil, ErrForbidden
	}
	if strings.TrimSpace(req.Content) == "" {
		return nil, errors.New("content is required")
	}

	if err := s.db.Model(post).Update("content", req.Content).Error; err != nil {
		return nil, err
	}
	post.Content = req.Content

	s.hub.Publish(tableForumPosts, realtime.ActionUpdate, post.ID)
	return post, nil
}

func (s *ForumService) DeletePost(actor authz.Actor, postID uuid.UUID) error {
	post, err := s.GetPost(postID)
	if err != nil {
		return err
	}
	if !authz.CanDeleteForumPost(actor, post) {
		return ErrForbidden
	}

	if err := s.db.Delete(post).Error; err != nil {
		return err
	}

	s.hub.Publish(tableForumPosts, realtime.ActionDelete, post.ID)
	return nil
}

// Upvote bumps the counter with an atomic SQL increment, so concurrent
// upvotes all land. No authentication required.
func (s *ForumService) Upvote(postID uuid.UUID) error {
	result := s.db.Model(&models.ForumPost{}).
		Where("id = ?", postID).
		Update("upvotes", gorm.Expr("upvotes + 1"))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPostNotFound
	}

	s.hub.Publish(tableForumPosts, realtime.ActionUpdate, postID)
	return nil
}

func (s *ForumService) CreateComment(actor authz.Actor, postID uuid.UUID, req *dto.CreateCommentRequest) (*models.ForumComment, error) {
	if strings.TrimSpace(req.Content) == "" {
		return nil, errors.New("content is required")
	}

	if _, err := s.GetPost(postID); err != nil {
		return nil, err
	}

	comment := models.ForumComment{
		ID:      uuid.New(),
		PostID:  postID,
		UserID:  actor.ID,
		Content: req.Content,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}

	s.hub.Publish(tableForumComments, realtime.ActionInsert, comment.ID)
	return &comment, nil
}

// ListComments returns a post's comments oldest-first.
func (s *ForumService) ListComments(postID uuid.UUID) ([]models.ForumComment, error) {
	var comments []models.ForumComment
	err := s.db.Where("post_id = ?", postID).
		Order("created_at ASC").
		Find(&comments).Error
	return comments, err
}
