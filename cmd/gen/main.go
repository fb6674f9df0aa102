package main

import (
	"hifybe/internal/infra/persistence/model"

	"gorm.io/gen"
)

func main() {
	models := []any{
		model.UserModel{},
		model.SongModel{},
		model.PlaylistModel{},
		model.PlaylistEntryModel{},
		model.PlayModel{},
		model.FriendshipModel{},
		model.FriendRequestModel{},
		model.ConversationModel{},
		model.MessageModel{},
		model.NotificationModel{},
	}

	gen := gen.NewGenerator(gen.Config{
		OutPath: "./internal/infra/persistence/postgres/query",
	})

	gen.ApplyBasic(models...)

	gen.Execute()
}
