package service

import (
	"context"
	"errors"
	"strings"

	"Blog_Hub/internal/model"
	"Blog_Hub/internal/pkg"
	"Blog_Hub/internal/repository/mysql"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type PostService struct {
	posts    *mysql.PostRepository
	comments *mysql.CommentRepository
	groups   *mysql.GroupRepository
	users    *mysql.UserRepository
	follows  *mysql.FollowRepository
	pageSize int
	smtp     pkg.SMTPConfig
}

func NewPostService(db *gorm.DB, pageSize int, smtp pkg.SMTPConfig) *PostService {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &PostService{
		posts:    &mysql.PostRepository{DB: db},
		comments: &mysql.CommentRepository{DB: db},
		groups:   &mysql.GroupRepository{DB: db},
		users:    &mysql.UserRepository{DB: db},
		follows:  &mysql.FollowRepository{DB: db},
		pageSize: pageSize,
		smtp:     smtp,
	}
}

func (s *PostService) PageSize() int { return s.pageSize }

// CreatePost persists a new post authored by userID. The group, when
// given, must exist; a dangling reference is a form error, not a 404.
func (s *PostService) CreatePost(userID uint64, text string, groupID *uint64, image string) (*model.Post, error) {
	if userID == 0 {
		return nil, pkg.ErrUnauthorized
	}
	if err := s.validatePostForm(text, groupID); err != nil {
		return nil, err
	}

	post := &model.Post{
		AuthorID: userID,
		GroupID:  groupID,
		Text:     text,
		Image:    image,
	}
	if err := s.posts.Create(post); err != nil {
		return nil, err
	}
	return s.posts.FindByID(post.ID)
}

// EditPost updates text, group and image in place. A non-author gets
// Forbidden and the post is left exactly as it was; the handler turns
// that into a silent redirect to the index listing.
func (s *PostService) EditPost(userID, postID uint64, text string, groupID *uint64, image string) (*model.Post, error) {
	post, err := s.posts.FindByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.NotFound("post")
		}
		return nil, err
	}
	if userID == 0 {
		return nil, pkg.ErrUnauthorized
	}
	if post.AuthorID != userID {
		return nil, pkg.Forbidden("only the author can edit a post")
	}
	if err := s.validatePostForm(text, groupID); err != nil {
		return nil, err
	}

	if err := s.posts.UpdateContent(postID, text, groupID, image); err != nil {
		return nil, err
	}
	return s.posts.FindByID(postID)
}

// GetPost loads one post with its comments in insertion order, plus
// the author's post count for the sidebar.
func (s *PostService) GetPost(postID uint64) (*model.Post, []model.Comment, int64, error) {
	post, err := s.posts.FindByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, 0, pkg.NotFound("post")
		}
		return nil, nil, 0, err
	}
	comments, err := s.comments.ListByPost(postID)
	if err != nil {
		return nil, nil, 0, err
	}
	count, err := s.posts.CountByAuthor(post.AuthorID)
	if err != nil {
		return nil, nil, 0, err
	}
	return post, comments, count, nil
}

// AddComment attaches a comment to an existing post and, when mail is
// configured, notifies the post's author best-effort.
func (s *PostService) AddComment(userID, postID uint64, text string) (*model.Comment, error) {
	post, err := s.posts.FindByID(postID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkg.NotFound("post")
		}
		return nil, err
	}
	if userID == 0 {
		return nil, pkg.ErrUnauthorized
	}
	if strings.TrimSpace(text) == "" {
		return nil, pkg.Validation("text", "must not be empty")
	}

	comment := &model.Comment{
		PostID:   postID,
		AuthorID: userID,
		Text:     text,
	}
	if err := s.comments.Create(comment); err != nil {
		return nil, err
	}
	s.notifyAuthor(post, userID, text)
	return comment, nil
}

func (s *PostService) notifyAuthor(post *model.Post, commenterID uint64, text string) {
	if !s.smtp.Enabled() || post.AuthorID == commenterID || post.Author.Email == "" {
		return
	}
	commenter, err := s.users.FindByID(commenterID)
	if err != nil {
		return
	}
	body := pkg.CommentNotificationHTML(commenter.Username, text, post.ID)
	if err := pkg.SendEmail(s.smtp, post.Author.Email, "New comment on your post", body); err != nil {
		logrus.WithError(err).WithField("post_id", post.ID).Warn("comment notification mail failed")
	}
}

// ListIndex is the front page: every post, newest first.
func (s *PostService) ListIndex(page int) ([]model.Post, int64, error) {
	offset, limit := s.window(page)
	list, err := s.posts.ListAll(offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.posts.CountAll()
	return list, total, err
}

// ListByGroup resolves the group by slug first; an unknown slug is a 404.
func (s *PostService) ListByGroup(slug string, page int) (*model.Group, []model.Post, int64, error) {
	group, err := s.groups.FindBySlug(slug)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, 0, pkg.NotFound("group")
		}
		return nil, nil, 0, err
	}
	offset, limit := s.window(page)
	list, err := s.posts.ListByGroup(group.ID, offset, limit)
	if err != nil {
		return nil, nil, 0, err
	}
	total, err := s.posts.CountByGroup(group.ID)
	return group, list, total, err
}

// ListByAuthor resolves the author by username; an unknown user is a 404.
func (s *PostService) ListByAuthor(username string, page int) (*model.User, []model.Post, int64, error) {
	author, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, 0, pkg.NotFound("user")
		}
		return nil, nil, 0, err
	}
	offset, limit := s.window(page)
	list, err := s.posts.ListByAuthor(author.ID, offset, limit)
	if err != nil {
		return nil, nil, 0, err
	}
	total, err := s.posts.CountByAuthor(author.ID)
	return author, list, total, err
}

// IsFollowing reports whether viewerID follows authorID; an anonymous
// viewer follows nobody.
func (s *PostService) IsFollowing(ctx context.Context, viewerID, authorID uint64) (bool, error) {
	if viewerID == 0 {
		return false, nil
	}
	return s.follows.Exists(ctx, viewerID, authorID)
}

// Feed lists posts from every author userID follows.
func (s *PostService) Feed(userID uint64, page int) ([]model.Post, int64, error) {
	if userID == 0 {
		return nil, 0, pkg.ErrUnauthorized
	}
	offset, limit := s.window(page)
	list, err := s.posts.ListFeed(userID, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	total, err := s.posts.CountFeed(userID)
	return list, total, err
}

func (s *PostService) validatePostForm(text string, groupID *uint64) error {
	if strings.TrimSpace(text) == "" {
		return pkg.Validation("text", "must not be empty")
	}
	if groupID != nil {
		if _, err := s.groups.FindByID(*groupID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return pkg.Validation("group", "unknown group")
			}
			return err
		}
	}
	return nil
}

// window converts a 1-based page index into offset/limit. A page past
// the end simply selects nothing; that is the contract.
func (s *PostService) window(page int) (int, int) {
	if page < 1 {
		page = 1
	}
	return (page - 1) * s.pageSize, s.pageSize
}
