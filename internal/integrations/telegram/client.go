package telegram

import (
	"fmt"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/plenkanet/CleanNet-Backend/internal/domain"
)

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Client клиент уведомлений о новых заказах в Telegram-чат оператора.
// Отправка fire-and-forget: ошибки логируются и не влияют на заказ.
type Client struct {
	bot    *tgbotapi.BotAPI
	chatID int64
	loc    *time.Location
	log    Logger
}

// NewClient создает клиента Telegram-уведомлений
func NewClient(botToken string, chatID int64, loc *time.Location, log Logger) (*Client, error) {
	bot, err := tgbotapi.NewBotAPI(botToken)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInit, err)
	}

	return &Client{
		bot:    bot,
		chatID: chatID,
		loc:    loc,
		log:    log,
	}, nil
}

// SendOrderCreated отправляет оператору сообщение о новом заказе
func (c *Client) SendOrderCreated(order *domain.Order) error {
	msg := tgbotapi.NewMessage(c.chatID, c.formatOrderMessage(order))

	if _, err := c.bot.Send(msg); err != nil {
		return fmt.Errorf("%w: order=%s: %v", ErrSendFailed, order.Number, err)
	}

	c.log.Info("telegram: order notification sent, order=%s", order.Number)
	return nil
}

// formatOrderMessage собирает текст уведомления о заказе
func (c *Client) formatOrderMessage(order *domain.Order) string {
	var b strings.Builder

	b.WriteString("🆕 Новый заказ " + order.Number + "\n\n")
	b.WriteString(fmt.Sprintf("👤 Клиент: %s (%s)\n", order.UserName, order.UserEmail))
	b.WriteString(fmt.Sprintf("📍 Адрес: %s\n\n", order.Address))

	if order.Items.CarpetArea > 0 {
		b.WriteString(fmt.Sprintf("📐 Ковер: %.1f кв.м\n", order.Items.CarpetArea))
	}
	if order.Items.ChairCount > 0 {
		b.WriteString(fmt.Sprintf("🪑 Стулья: %d\n", order.Items.ChairCount))
	}
	if order.Items.ArmchairCount > 0 {
		b.WriteString(fmt.Sprintf("🛋️ Кресла: %d\n", order.Items.ArmchairCount))
	}
	if order.Items.SofaCount > 0 {
		b.WriteString(fmt.Sprintf("🛋️ Диваны: %d\n", order.Items.SofaCount))
		if order.Items.WithPillows {
			b.WriteString("🪁 С подушками: Да\n")
		}
	}
	if order.Items.MattressCount > 0 {
		b.WriteString(fmt.Sprintf("🛏️ Матрасы: %d\n", order.Items.MattressCount))
	}

	if order.AdditionalInfo != nil && *order.AdditionalInfo != "" {
		b.WriteString(fmt.Sprintf("\n📝 Доп. информация: %s\n", *order.AdditionalInfo))
	}
	if len(order.PhotoURLs) > 0 {
		b.WriteString(fmt.Sprintf("📸 Фото: %s\n", strings.Join(order.PhotoURLs, ", ")))
	}

	if order.ScheduledAt != nil {
		b.WriteString(fmt.Sprintf("\n📅 Время выезда: %s\n",
			order.ScheduledAt.In(c.loc).Format("02.01.2006 15:04")))
	} else {
		b.WriteString("\n📅 Время выезда: согласовать по телефону\n")
	}

	b.WriteString(fmt.Sprintf("💰 Цена: %.0fzł\n", order.Price))
	b.WriteString(fmt.Sprintf("⏱ Оценка работ: %d мин\n", order.EstimatedMinutes))

	return b.String()
}

// DisabledClient заглушка, используемая при выключенных уведомлениях
type DisabledClient struct {
	log Logger
}

// NewDisabledClient создает заглушку уведомлений
func NewDisabledClient(log Logger) *DisabledClient {
	return &DisabledClient{log: log}
}

// SendOrderCreated ничего не отправляет
func (c *DisabledClient) SendOrderCreated(order *domain.Order) error {
	c.log.Info("telegram: notifications disabled, skipping order=%s", order.Number)
	return nil
}
