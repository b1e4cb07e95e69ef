package service

import (
	"context"
	"errors"
	"time"

	"Blog_Hub/internal/pkg"
	"Blog_Hub/internal/repository/mysql"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

type FollowService struct {
	follows  *mysql.FollowRepository
	users    *mysql.UserRepository
	producer *pkg.KafkaProducer
}

// NewFollowService wires the follow edges; producer may be nil when
// kafka is not configured.
func NewFollowService(db *gorm.DB, producer *pkg.KafkaProducer) *FollowService {
	return &FollowService{
		follows:  &mysql.FollowRepository{DB: db},
		users:    &mysql.UserRepository{DB: db},
		producer: producer,
	}
}

// Follow subscribes userID to the posts of targetUsername. Following
// yourself or someone you already follow is a no-op, never an error;
// the unique index on the pair backs that up under concurrency.
func (s *FollowService) Follow(ctx context.Context, userID uint64, targetUsername string) error {
	if userID == 0 {
		return pkg.ErrUnauthorized
	}
	target, err := s.users.FindByUsername(targetUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.NotFound("user")
		}
		return err
	}
	if target.ID == userID {
		return nil
	}
	exists, err := s.follows.Exists(ctx, userID, target.ID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}
	if err := s.follows.Create(ctx, userID, target.ID); err != nil {
		return err
	}
	s.emit(ctx, "follow", userID, target.ID)
	return nil
}

// Unfollow removes the edge; removing an absent edge is a no-op.
func (s *FollowService) Unfollow(ctx context.Context, userID uint64, targetUsername string) error {
	if userID == 0 {
		return pkg.ErrUnauthorized
	}
	target, err := s.users.FindByUsername(targetUsername)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return pkg.NotFound("user")
		}
		return err
	}
	exists, err := s.follows.Exists(ctx, userID, target.ID)
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}
	if err := s.follows.Delete(ctx, userID, target.ID); err != nil {
		return err
	}
	s.emit(ctx, "unfollow", userID, target.ID)
	return nil
}

func (s *FollowService) IsFollowing(ctx context.Context, userID, authorID uint64) (bool, error) {
	if userID == 0 {
		return false, nil
	}
	return s.follows.Exists(ctx, userID, authorID)
}

// emit publishes the state change best-effort; a broker outage must
// not fail the request.
func (s *FollowService) emit(ctx context.Context, event string, userID, authorID uint64) {
	err := s.producer.SendFollowEvent(ctx, pkg.FollowEvent{
		Event:    event,
		UserID:   userID,
		AuthorID: authorID,
		At:       time.Now().UTC(),
	})
	if err != nil {
		logrus.WithError(err).WithFields(logrus.Fields{
			"event":     event,
			"user_id":   userID,
			"author_id": authorID,
		}).Warn("follow event publish failed")
	}
}
