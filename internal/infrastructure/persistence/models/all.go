package models

// All returns every model, in migration order
func All() []interface{} {
	return []interface{}{
		&RoleModel{},
		&UserModel{},
		&UserRoleModel{},
		&CategoryModel{},
		&VideoModel{},
		&CommentModel{},
		&LikeModel{},
		&PlaylistModel{},
		&PlaylistVideoModel{},
	}
}
