package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"helpcenter/internal/domain/ticket"
	"helpcenter/internal/infrastructure/persistence/models"
	"helpcenter/internal/infrastructure/repository"
	"helpcenter/internal/shared/constants"
	"helpcenter/internal/shared/db"
	"helpcenter/internal/shared/logger"
)

func openScenarioDB(t *testing.T) *gorm.DB {
	t.Helper()
	conn, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	sqlDB, err := conn.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, conn.AutoMigrate(
		&models.SequenceCounterModel{},
		&models.SupportTicketModel{},
		&models.SupportMessageModel{},
	))
	return conn
}

// TestTicketLifecycleScenario walks a ticket from creation through operator
// and customer replies, an admin resolution and a reopening reply.
func TestTicketLifecycleScenario(t *testing.T) {
	conn := openScenarioDB(t)
	require.NoError(t, conn.Create(&models.SequenceCounterModel{Name: ticket.DefaultCounterName, Seq: 41}).Error)

	log := logger.NewNop()
	ticketRepo := repository.NewTicketRepository(conn, log)
	messageRepo := repository.NewMessageRepository(conn)
	tx := db.NewTransactionManager(conn)
	pub := &mockEventPublisher{}

	current := time.Date(2024, 11, 5, 9, 0, 0, 0, time.UTC)
	clock := func() time.Time {
		current = current.Add(time.Minute)
		return current
	}

	generator := ticket.NewNumberGenerator(repository.NewSequenceCounterRepository(conn), clock)
	create := NewCreateTicketUseCase(ticketRepo, generator, NumberingConfig{}, pub, clock, log)
	reply := NewReplyTicketUseCase(ticketRepo, messageRepo, tx, pub, clock, log)
	changeStatus := NewChangeStatusUseCase(ticketRepo, tx, pub, clock, log)
	get := NewGetTicketUseCase(ticketRepo, log)

	ctx := context.Background()
	owner := Actor{ID: 21, Role: constants.RoleCustomer, Email: "buyer@example.com"}
	operator := Actor{ID: 1, Role: constants.RoleAdmin}

	created, err := create.Execute(ctx, CreateTicketCommand{
		Subject: "Wrong size delivered",
		Body:    "I ordered a medium.",
		Actor:   owner,
	})
	require.NoError(t, err)
	assert.Equal(t, "SUP-2024-000042", created.Number)
	assert.Equal(t, "OPEN", created.Status)

	step := func(actor Actor, body string) string {
		res, err := reply.Execute(ctx, ReplyTicketCommand{Number: created.Number, Body: body, Actor: actor})
		require.NoError(t, err)
		return res.Ticket.Status
	}

	assert.Equal(t, "IN_PROGRESS", step(operator, "Sorry about that, checking now."))
	assert.Equal(t, "IN_PROGRESS", step(owner, "Thanks."))

	resolved, err := changeStatus.Execute(ctx, ChangeStatusCommand{Number: created.Number, Status: "RESOLVED", ActorID: operator.ID})
	require.NoError(t, err)
	assert.Equal(t, "RESOLVED", resolved.Status)

	assert.Equal(t, "IN_PROGRESS", step(owner, "The replacement is also wrong."))

	full, err := get.Execute(ctx, GetTicketQuery{Number: created.Number, Actor: owner})
	require.NoError(t, err)
	assert.Equal(t, "IN_PROGRESS", full.Status)
	require.Len(t, full.Messages, 4)
	for i := 1; i < len(full.Messages); i++ {
		assert.True(t, full.Messages[i].CreatedAt.After(full.Messages[i-1].CreatedAt))
	}
	assert.Equal(t, []string{"USER", "ADMIN", "USER", "USER"}, []string{
		full.Messages[0].SenderRole, full.Messages[1].SenderRole,
		full.Messages[2].SenderRole, full.Messages[3].SenderRole,
	})

	var statusEvents int
	for _, typ := range pub.types() {
		if typ == ticket.EventTicketStatusChanged {
			statusEvents++
		}
	}
	assert.Equal(t, 3, statusEvents)
}
