package domain

import "time"

// Like records that a user liked a post. A user id appears at most once in a
// post's likes list.
type Like struct {
	UserID string `json:"user" bson:"user"`
}

// Comment is a single comment embedded in a post. Author name and avatar are
// denormalized snapshots taken when the comment is written; they are never
// re-synchronized with later changes to the author account.
type Comment struct {
	ID           string    `json:"id" bson:"id"`
	Text         string    `json:"text" bson:"text"`
	AuthorID     string    `json:"user" bson:"user"`
	AuthorName   string    `json:"name" bson:"name"`
	AuthorAvatar string    `json:"avatar" bson:"avatar"`
	Date         time.Time `json:"date" bson:"date"`
}

// Post is the aggregate root for a feed entry together with its embedded
// likes and comments sub-lists. Author fields are snapshots as of posting
// time, a deliberate product decision rather than a live join.
type Post struct {
	ID           string    `json:"id" bson:"_id,omitempty"`
	Text         string    `json:"text" bson:"text"`
	AuthorID     string    `json:"user" bson:"user"`
	AuthorName   string    `json:"name" bson:"name"`
	AuthorAvatar string    `json:"avatar" bson:"avatar"`
	Date         time.Time `json:"date" bson:"date"`
	Likes        []Like    `json:"likes" bson:"likes"`
	Comments     []Comment `json:"comments" bson:"comments"`
}

// LikedBy reports whether the user already likes the post.
func (p *Post) LikedBy(userID string) bool {
	for _, l := range p.Likes {
		if l.UserID == userID {
			return true
		}
	}
	return false
}

// AddLike inserts a like at the head of the likes list. Callers must check
// LikedBy first; AddLike does not enforce uniqueness itself.
func (p *Post) AddLike(userID string) {
	p.Likes = append([]Like{{UserID: userID}}, p.Likes...)
}

// RemoveLike removes the user's like and reports whether it was present.
func (p *Post) RemoveLike(userID string) bool {
	for i, l := range p.Likes {
		if l.UserID == userID {
			p.Likes = append(p.Likes[:i], p.Likes[i+1:]...)
			return true
		}
	}
	return false
}

// AddComment inserts the comment at the head of the comments list.
func (p *Post) AddComment(c Comment) {
	p.Comments = append([]Comment{c}, p.Comments...)
}

// RemoveComment removes the comment with the given id and reports whether it
// was present.
func (p *Post) RemoveComment(id string) bool {
	for i, c := range p.Comments {
		if c.ID == id {
			p.Comments = append(p.Comments[:i], p.Comments[i+1:]...)
			return true
		}
	}
	return false
}
