package models

// Hashtag stores a unique lowercase tag. UseCount is the lifetime number of
// mentions and only ever grows; deleting a post does not decrement it. The
// number of live mentions is derived from post_hashtags instead.
type Hashtag struct {
	ID       uint   `json:"id" gorm:"primaryKey"`
	Tag      string `json:"tag" gorm:"size:100;uniqueIndex"`
	UseCount int64  `json:"use_count" gorm:"default:0"`
}

// PostHashtag links a post to a hashtag it mentions, once per pair.
type PostHashtag struct {
	ID        uint `json:"id" gorm:"primaryKey"`
	PostID    uint `json:"post_id" gorm:"index;uniqueIndex:idx_post_hashtag"`
	HashtagID uint `json:"hashtag_id" gorm:"index;uniqueIndex:idx_post_hashtag"`
}

// HashtagCount pairs a tag with both count interpretations: the stored
// lifetime counter and the live count of posts still linking to it.
type HashtagCount struct {
	Tag           string `json:"tag"`
	LifetimeCount int64  `json:"lifetime_count"`
	LiveCount     int64  `json:"live_count"`
}
