package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/vinaypatil-tal/scoot-assist-chat/internal/matcher"
	"github.com/vinaypatil-tal/scoot-assist-chat/internal/models"
)

type ChatRepository interface {
	AddMessage(ctx context.Context, msg *models.ChatMessage) error
	GetMessagesByUser(ctx context.Context, userID string) ([]models.ChatMessage, error)
	GetRecentMessages(ctx context.Context, userID string, n int64) ([]models.ChatMessage, error)
}

type CatalogProvider interface {
	ActiveCatalog(ctx context.Context) (*models.Catalog, error)
}

type ChatService struct {
	chats   ChatRepository
	catalog CatalogProvider
}

func NewChatService(chats ChatRepository, catalog CatalogProvider) *ChatService {
	return &ChatService{chats: chats, catalog: catalog}
}

// SendMessage stores the user's message, picks the bot answer from the
// current catalog snapshot and stores it as the bot's reply. The returned
// message is the bot's.
func (s *ChatService) SendMessage(ctx context.Context, userID, content string) (*models.ChatMessage, error) {
	if content == "" {
		return nil, errors.New("empty message")
	}

	userMsg := &models.ChatMessage{
		UserID:  userID,
		Content: content,
		IsUser:  true,
		Type:    models.MessageTypeText,
	}
	if err := s.chats.AddMessage(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("store user message: %w", err)
	}

	catalog, err := s.catalog.ActiveCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	return s.reply(ctx, userID, matcher.Match(content, catalog.Items), models.MessageTypeText)
}

// SendQuickReply handles a predefined category selection. It records the
// selection as a quick-reply message and answers via direct category lookup,
// never through keyword scoring.
func (s *ChatService) SendQuickReply(ctx context.Context, userID, slug, title string) (*models.ChatMessage, error) {
	if !matcher.KnownQuickReply(slug) {
		return nil, errors.New("unknown quick reply")
	}

	userMsg := &models.ChatMessage{
		UserID:  userID,
		Content: fmt.Sprintf("I need help with: %s", title),
		IsUser:  true,
		Type:    models.MessageTypeQuickReply,
	}
	if err := s.chats.AddMessage(ctx, userMsg); err != nil {
		return nil, fmt.Errorf("store quick reply: %w", err)
	}

	catalog, err := s.catalog.ActiveCatalog(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	return s.reply(ctx, userID, matcher.QuickReply(slug, *catalog), models.MessageTypeText)
}

// SendFileMessage records an already-uploaded attachment and acknowledges it.
func (s *ChatService) SendFileMessage(ctx context.Context, userID string, file *models.ChatMessage) (*models.ChatMessage, error) {
	file.UserID = userID
	file.IsUser = true
	file.Type = models.MessageTypeFile
	if file.Content == "" {
		file.Content = fmt.Sprintf("Uploaded: %s", file.FileName)
	}
	if err := s.chats.AddMessage(ctx, file); err != nil {
		return nil, fmt.Errorf("store file message: %w", err)
	}

	return s.reply(ctx, userID, matcher.FileReceivedResponse, models.MessageTypeText)
}

func (s *ChatService) History(ctx context.Context, userID string) ([]models.ChatMessage, error) {
	return s.chats.GetMessagesByUser(ctx, userID)
}

func (s *ChatService) reply(ctx context.Context, userID, content string, msgType models.MessageType) (*models.ChatMessage, error) {
	botMsg := &models.ChatMessage{
		UserID:  userID,
		Content: content,
		IsUser:  false,
		Type:    msgType,
	}
	if err := s.chats.AddMessage(ctx, botMsg); err != nil {
		return nil, fmt.Errorf("store bot message: %w", err)
	}
	return botMsg, nil
}
