package model

import "lend/shared/model"

const (
	CommentTableName  = "comments"
	CommentEntityName = "comment"

	UsersTableName = "users"

	FieldText       = "text"
	FieldItemID     = "item_id"
	FieldAuthorID   = "author_id"
	FieldAuthorName = "author_name"
)

type Comment struct {
	ID         int64  `db:"id"`
	Text       string `db:"text"`
	ItemID     int64  `db:"item_id"`
	AuthorID   int64  `db:"author_id"`
	AuthorName string `db:"author_name" table:"users" column:"name"`
	model.Metadata
}

func (Comment) GetJoinQuery() string {
	return "JOIN users ON users.id = comments.author_id"
}
