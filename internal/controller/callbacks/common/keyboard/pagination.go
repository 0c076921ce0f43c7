package keyboard

import (
	"fmt"

	"github.com/go-telegram/bot/models"
)

// Page границы страницы списка
type Page struct {
	Number     int // 0-based, уже приведён к допустимому диапазону
	TotalPages int
	Start      int
	End        int
}

// Paginate считает границы страницы для списка из total элементов
func Paginate(total, page, pageSize int) Page {
	if pageSize <= 0 {
		pageSize = 1
	}
	totalPages := (total + pageSize - 1) / pageSize
	if totalPages == 0 {
		totalPages = 1
	}
	if page < 0 {
		page = 0
	}
	if page > totalPages-1 {
		page = totalPages - 1
	}

	start := page * pageSize
	end := start + pageSize
	if end > total {
		end = total
	}

	return Page{Number: page, TotalPages: totalPages, Start: start, End: end}
}

// PaginationButtons ряд кнопок пагинации
// prefix - префикс для callback (например "doctors_page:")
func PaginationButtons(prefix string, currentPage, totalPages int) []models.InlineKeyboardButton {
	if totalPages <= 1 {
		return nil
	}

	var buttons []models.InlineKeyboardButton

	if currentPage > 0 {
		buttons = append(buttons, Button("⬅️", fmt.Sprintf("%s%d", prefix, currentPage-1)))
	}

	buttons = append(buttons, Button(
		fmt.Sprintf("📄 %d/%d", currentPage+1, totalPages),
		"noop",
	))

	if currentPage < totalPages-1 {
		buttons = append(buttons, Button("➡️", fmt.Sprintf("%s%d", prefix, currentPage+1)))
	}

	return buttons
}

func (b *Builder) AddPagination(prefix string, currentPage, totalPages int) *Builder {
	return b.Row(PaginationButtons(prefix, currentPage, totalPages)...)
}
