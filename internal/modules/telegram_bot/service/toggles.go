package service

import "context"

func (t *Telegram) handleToggle(ctx context.Context, chatID int64, key string) {
	user, err := t.getUser(ctx, chatID)
	if err != nil {
		_, _ = t.Send(ctx, chatID, "Settings not found, try /start")
		return
	}

	bs := &user.Settings
	switch key {
	case "scratch":
		bs.UseScratchRSI = !bs.UseScratchRSI
	case "csv":
		bs.UseCSV = !bs.UseCSV
	default:
		return
	}

	if err := t.repo.Update(ctx, user); err != nil {
		_, _ = t.Send(ctx, chatID, "⚠️ Couldn't save: "+err.Error())
		return
	}
	t.handleSettingsMenu(ctx, chatID)
}
