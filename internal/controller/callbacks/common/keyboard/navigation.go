package keyboard

import "github.com/go-telegram/bot/models"

const (
	backToMainData    = "back_to_main"
	backToDoctorsData = "doctors_page:0"
)

func BackButton(callbackData string) models.InlineKeyboardButton {
	return Button("⬅️ Back", callbackData)
}

func BackToMainButton() models.InlineKeyboardButton {
	return Button("🏠 Main menu", backToMainData)
}

func BackToDoctorsButton() models.InlineKeyboardButton {
	return Button("⬅️ All doctors", backToDoctorsData)
}

func CancelButton(callbackData string) models.InlineKeyboardButton {
	return Button("❌ Cancel", callbackData)
}

func ConfirmButton(callbackData string) models.InlineKeyboardButton {
	return Button("✅ Confirm", callbackData)
}

// ConfirmCancelButtons ряд Confirm / Cancel
func ConfirmCancelButtons(confirmCallback, cancelCallback string) []models.InlineKeyboardButton {
	return []models.InlineKeyboardButton{
		ConfirmButton(confirmCallback),
		CancelButton(cancelCallback),
	}
}

func (b *Builder) AddBackButton(callbackData string) *Builder {
	return b.Row(BackButton(callbackData))
}

func (b *Builder) AddBackToMainButton() *Builder {
	return b.Row(BackToMainButton())
}

func (b *Builder) AddBackToDoctorsButton() *Builder {
	return b.Row(BackToDoctorsButton())
}
