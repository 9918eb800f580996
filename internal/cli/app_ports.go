package cli

import "github.com/bodylab/trainlog/internal/app"

func (a *App) verifyAccessUseCase() app.VerifyAccessUseCase {
	if a.VerifyAccess != nil {
		return a.VerifyAccess
	}
	return a.Access
}

func (a *App) loadTemplateUseCase() app.LoadTemplateUseCase {
	if a.LoadTemplate != nil {
		return a.LoadTemplate
	}
	return a.Sessions
}

func (a *App) startSessionUseCase() app.StartSessionUseCase {
	if a.StartSession != nil {
		return a.StartSession
	}
	return a.Sessions
}

func (a *App) saveSessionUseCase() app.SaveSessionUseCase {
	if a.SaveSession != nil {
		return a.SaveSession
	}
	return a.Sessions
}

func (a *App) listHistoryUseCase() app.ListHistoryUseCase {
	if a.ListHistory != nil {
		return a.ListHistory
	}
	return a.Sessions
}

func (a *App) summarizeUseCase() app.SummarizeUseCase {
	if a.Summarize != nil {
		return a.Summarize
	}
	return a.Summary
}
