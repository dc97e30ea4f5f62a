package model

import (
	"errors"
	"time"
)

// Followship is a directed edge: FollowerID follows FollowingID.
// At most one row per ordered pair. Nothing forbids a user from following
// themselves; the product has never specified otherwise.
type Followship struct {
	FollowerID  int64     `db:"follower_id" json:"follower_id"`
	FollowingID int64     `db:"following_id" json:"following_id"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}

var (
	ErrAlreadyFollowing = errors.New("already following this user")
	ErrNotFollowing     = errors.New("not following this user")
)
