package usecase

import "time"

// SetClock reemplaza el reloj usado para created_at (solo tests).
func (uc *OrderUseCase) SetClock(now func() time.Time) { uc.now = now }
