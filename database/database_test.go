package database

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"
)

func TestEnsureIndexes(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("creates unique username and createdAt indexes", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse(), mtest.CreateSuccessResponse())
		db := New(mt.Client, "cnapp")

		require.NoError(mt, db.EnsureIndexes(context.Background()))

		users := mt.GetStartedEvent()
		assert.Equal(mt, "createIndexes", users.CommandName)
		assert.Equal(mt, UsersCollection, users.Command.Lookup("createIndexes").StringValue())
		index := users.Command.Lookup("indexes").Array().Index(0).Value().Document()
		assert.True(mt, index.Lookup("unique").Boolean())
		assert.Equal(mt, "username", index.Lookup("key").Document().Index(0).Key())

		messages := mt.GetStartedEvent()
		assert.Equal(mt, MessagesCollection, messages.Command.Lookup("createIndexes").StringValue())
	})

	mt.Run("reports failures", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    11000,
			Message: "E11000 duplicate key error",
			Name:    "DuplicateKey",
		}))
		db := New(mt.Client, "cnapp")

		assert.Error(mt, db.EnsureIndexes(context.Background()))
	})
}

func TestPing(t *testing.T) {
	mt := mtest.New(t, mtest.NewOptions().ClientType(mtest.Mock))

	mt.Run("ok", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateSuccessResponse())
		assert.NoError(mt, New(mt.Client, "cnapp").Ping(context.Background()))
	})

	mt.Run("error", func(mt *mtest.T) {
		mt.AddMockResponses(mtest.CreateCommandErrorResponse(mtest.CommandError{
			Code:    13,
			Message: "unauthorized",
			Name:    "Unauthorized",
		}))
		assert.Error(mt, New(mt.Client, "cnapp").Ping(context.Background()))
	})
}

func TestDisconnectNil(t *testing.T) {
	var db *DB
	assert.NoError(t, db.Disconnect(context.Background()))
}
