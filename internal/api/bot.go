package telegram

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	app "hypocotyl-bot/internal/application"
	"hypocotyl-bot/internal/container"
	"hypocotyl-bot/internal/domain/entity"
)

const (
	msgStart = `👋 Привет! Я бот для анализа формы гипокотилей.

🖼 Отправьте мне бинарную маску проростка (белый объект на чёрном фоне), и я извлеку её контур.
🧬 Подпись к изображению — метка генотипа.
📊 Когда масок наберётся несколько, команда /pca покажет главные компоненты формы.

📋 Команды:
/mask [генотип] — начать загрузку масок
/samples [генотип] — сколько масок сохранено
/pca [k] [генотип] — анализ главных компонент
/reset — удалить все маски
/help — справка
/cancel — отменить текущую операцию`

	msgHelp = `ℹ️ Как пользоваться ботом:

1️⃣ Отправьте /mask col-0, чтобы метить следующие маски генотипом col-0
2️⃣ Присылайте маски фото или файлом (PNG, TIFF, BMP, JPEG)
3️⃣ Вы получите контур с точками: белая точка — начало обхода
4️⃣ Отправьте /pca 3 col-0 — три компоненты по маскам col-0

💡 Рекомендации:
• Лучше присылать файлом: сжатие фото портит края маски
• На маске должен быть один проросток, берётся самая крупная область
• Для PCA нужно хотя бы на одну маску больше, чем компонент

📋 Команды:
/mask [генотип] — начать загрузку масок
/samples [генотип] — сколько масок сохранено
/pca [k] [генотип] — анализ главных компонент
/reset — удалить все маски
/cancel — отменить операцию`

	msgAwaitingMask     = "🖼 Отправьте маску. Генотип: %s."
	msgCancelled        = "❌ Операция отменена. Отправьте /mask, чтобы загрузить маски."
	msgSendMask         = "🖼 Пожалуйста, отправьте изображение маски или команду из /help."
	msgUnknownCommand   = "❓ Неизвестная команда. Используйте /help для справки."
	msgProcessing       = "⏳ Обрабатываю маску..."
	msgComputing        = "⏳ Считаю главные компоненты..."
	msgReset            = "🗑 Все маски удалены."
	msgSamples          = "📦 Сохранено масок (%s): %d."
	msgNoForeground     = "⚠️ На изображении не найден объект. Проверьте, что проросток светлый на тёмном фоне."
	msgNotEnoughSamples = "⚠️ Недостаточно масок для такого числа компонент: нужно хотя бы k+1 масок."
	msgBadPCAArgs       = "⚠️ Формат: /pca [k] [генотип], где k — положительное число."
	msgNotImage         = "⚠️ Файл не похож на изображение."
	msgProcessingError  = "⚠️ Не удалось обработать изображение. Попробуйте другой файл."
)

// Bot представляет Telegram-бота
type Bot struct {
	api       *tgbotapi.BotAPI
	container *container.Container
}

// NewBot создаёт нового бота
func NewBot(token string, c *container.Container) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	log.Printf("Authorized on account %s", api.Self.UserName)

	return &Bot{
		api:       api,
		container: c,
	}, nil
}

// Run запускает основной цикл обработки сообщений
func (b *Bot) Run() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	ctx := context.Background()

	for update := range updates {
		if update.Message == nil {
			continue
		}

		b.handleMessage(ctx, update.Message)
	}

	return nil
}

// handleMessage обрабатывает входящее сообщение
func (b *Bot) handleMessage(ctx context.Context, msg *tgbotapi.Message) {
	if msg.From == nil {
		return
	}

	user, err := b.container.UserService.Get(ctx, msg.From.ID, msg.Chat.ID)
	if err != nil {
		log.Printf("Error getting user: %v", err)
		return
	}

	// Обработка команд
	if msg.IsCommand() {
		b.handleCommand(ctx, msg, user)
		return
	}

	// Фото приходит в нескольких размерах, берём самое большое
	if len(msg.Photo) > 0 {
		b.handleMask(ctx, msg, user, msg.Photo[len(msg.Photo)-1].FileID)
		return
	}

	if msg.Document != nil {
		if !isImageDocument(msg.Document) {
			b.sendMessage(msg.Chat.ID, msgNotImage)
			return
		}
		b.handleMask(ctx, msg, user, msg.Document.FileID)
		return
	}

	b.sendMessage(msg.Chat.ID, msgSendMask)
}

// handleCommand обрабатывает команды бота
func (b *Bot) handleCommand(ctx context.Context, msg *tgbotapi.Message, user *entity.User) {
	chatID := msg.Chat.ID
	args := strings.TrimSpace(msg.CommandArguments())

	switch msg.Command() {
	case "start":
		b.setState(ctx, user, entity.StateMainMenu)
		b.sendMessage(chatID, msgStart)

	case "help":
		b.sendMessage(chatID, msgHelp)

	case "mask":
		user, err := b.container.UserService.BeginMasks(ctx, user.ID, chatID, args)
		if err != nil {
			log.Printf("Error updating user: %v", err)
			b.sendMessage(chatID, msgProcessingError)
			return
		}
		b.sendMessage(chatID, fmt.Sprintf(msgAwaitingMask, genotypeLabel(user.Genotype, entity.DefaultGenotype)))

	case "samples":
		n, err := b.container.PhenotypeService.CountSamples(ctx, user.ID, args)
		if err != nil {
			log.Printf("Error counting samples: %v", err)
			b.sendMessage(chatID, msgProcessingError)
			return
		}
		b.sendMessage(chatID, fmt.Sprintf(msgSamples, genotypeLabel(args, "все генотипы"), n))

	case "pca":
		b.handlePCA(ctx, chatID, user, args)

	case "reset":
		if err := b.container.PhenotypeService.Reset(ctx, user.ID); err != nil {
			log.Printf("Error clearing samples: %v", err)
			b.sendMessage(chatID, msgProcessingError)
			return
		}
		b.setState(ctx, user, entity.StateMainMenu)
		b.sendMessage(chatID, msgReset)

	case "cancel":
		b.setState(ctx, user, entity.StateMainMenu)
		b.sendMessage(chatID, msgCancelled)

	default:
		b.sendMessage(chatID, msgUnknownCommand)
	}
}

// handleMask скачивает маску, извлекает контур и отправляет его обратно
func (b *Bot) handleMask(ctx context.Context, msg *tgbotapi.Message, user *entity.User, fileID string) {
	previous := user.State
	b.setState(ctx, user, entity.StateProcessing)
	defer b.setState(ctx, user, previous)

	b.sendMessage(msg.Chat.ID, msgProcessing)

	imageData, err := b.downloadFile(fileID)
	if err != nil {
		log.Printf("Error downloading mask: %v", err)
		b.sendMessage(msg.Chat.ID, msgProcessingError)
		return
	}

	genotype := strings.TrimSpace(msg.Caption)
	out, err := b.container.PhenotypeService.AcceptMask(ctx, user.ID, msg.Chat.ID, genotype, imageData)
	if err != nil {
		log.Printf("Error processing mask (%d bytes): %v", len(imageData), err)
		b.sendMessage(msg.Chat.ID, errorMessage(err))
		return
	}

	text := formatContourSummary(out.Sample)
	if len(out.Overlay) == 0 {
		b.sendMessage(msg.Chat.ID, text)
		return
	}
	b.sendPhoto(msg.Chat.ID, "contour.png", out.Overlay, text)
}

// handlePCA считает главные компоненты и отправляет отчёт
func (b *Bot) handlePCA(ctx context.Context, chatID int64, user *entity.User, args string) {
	k, genotype, err := parsePCAArgs(args)
	if err != nil {
		b.sendMessage(chatID, msgBadPCAArgs)
		return
	}

	b.sendMessage(chatID, msgComputing)

	out, err := b.container.PhenotypeService.RunPCA(ctx, user.ID, genotype, k)
	if err != nil {
		log.Printf("Error running pca: %v", err)
		b.sendMessage(chatID, errorMessage(err))
		return
	}

	text := formatPCAReport(out)
	if len(out.Modes) == 0 {
		b.sendMessage(chatID, text)
		return
	}
	b.sendPhoto(chatID, "modes.png", out.Modes, text)
}

// parsePCAArgs разбирает "[k] [генотип]"; k = 0 означает значение по умолчанию
func parsePCAArgs(args string) (int, string, error) {
	fields := strings.Fields(args)
	if len(fields) == 0 {
		return 0, "", nil
	}

	k, err := strconv.Atoi(fields[0])
	if err != nil {
		// Первое слово не число, значит это генотип
		return 0, strings.Join(fields, " "), nil
	}
	if k < 1 {
		return 0, "", fmt.Errorf("component count must be positive, got %d", k)
	}
	return k, strings.Join(fields[1:], " "), nil
}

// formatContourSummary описание сохранённого образца
func formatContourSummary(sample *entity.Sample) string {
	c := sample.Contour
	start := c.InterpOutline[0]
	return fmt.Sprintf("✅ Маска #%d сохранена (генотип: %s)\n"+
		"📏 Точек границы: %d, периметр: %.1f px\n"+
		"🔁 Точек после перевыборки: %d, начало: (%.1f; %.1f)",
		sample.ID, sample.Genotype,
		len(c.Outline), c.Outline.Perimeter(),
		len(c.InterpOutline), start.X, start.Y)
}

// formatPCAReport текстовый отчёт по главным компонентам
func formatPCAReport(out *app.PCAOutput) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "📊 PCA (%s): масок %d, компонент %d\n",
		genotypeLabel(out.Genotype, "все генотипы"), out.Samples, out.Result.Components())

	explained := out.Result.ExplainedVariance()
	total := 0.0
	for i, ratio := range explained {
		total += ratio
		fmt.Fprintf(&sb, "PC%d: λ = %.3f, %.1f%%\n", i+1, out.Result.EigenValues.At(i, i), ratio*100)
	}
	fmt.Fprintf(&sb, "Суммарно: %.1f%%\n", total*100)
	fmt.Fprintf(&sb, "Ошибка восстановления (MSE): %.4f", out.Result.ReconstructionMSE())

	return sb.String()
}

// errorMessage сообщение пользователю для известных ошибок
func errorMessage(err error) string {
	switch {
	case errors.Is(err, entity.ErrNoForegroundFound):
		return msgNoForeground
	case errors.Is(err, entity.ErrInsufficientComponents):
		return msgNotEnoughSamples
	default:
		return msgProcessingError
	}
}

func genotypeLabel(genotype, fallback string) string {
	if genotype == "" {
		return fallback
	}
	return genotype
}

func isImageDocument(doc *tgbotapi.Document) bool {
	if strings.HasPrefix(doc.MimeType, "image/") {
		return true
	}
	name := strings.ToLower(doc.FileName)
	for _, ext := range []string{".png", ".tif", ".tiff", ".bmp", ".jpg", ".jpeg", ".gif"} {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

func (b *Bot) setState(ctx context.Context, user *entity.User, state entity.UserState) {
	if _, err := b.container.UserService.SetState(ctx, user.ID, user.ChatID, state); err != nil {
		log.Printf("Error saving user state: %v", err)
		return
	}
	user.SetState(state)
}

// downloadFile скачивает файл из Telegram
func (b *Bot) downloadFile(fileID string) ([]byte, error) {
	file, err := b.api.GetFile(tgbotapi.FileConfig{FileID: fileID})
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}

	fileURL := file.Link(b.api.Token)

	resp, err := http.Get(fileURL)
	if err != nil {
		return nil, fmt.Errorf("download file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("download file: status %s", resp.Status)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}

	return data, nil
}

// sendMessage отправляет текстовое сообщение
func (b *Bot) sendMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	if _, err := b.api.Send(msg); err != nil {
		log.Printf("Error sending message: %v", err)
	}
}

// sendPhoto отправляет PNG с подписью
func (b *Bot) sendPhoto(chatID int64, name string, data []byte, caption string) {
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: name, Bytes: data})
	photo.Caption = caption
	if _, err := b.api.Send(photo); err != nil {
		log.Printf("Error sending photo: %v", err)
	}
}
