package domain

import "errors"

var (
	ErrNotFound           = errors.New("resource not found")
	ErrConflict           = errors.New("resource conflict")
	ErrSlotTaken          = errors.New("appointment slot already booked")
	ErrWorkingHoursNotSet = errors.New("doctor working hours not set")
	ErrAlreadyAssigned    = errors.New("patient already assigned to this doctor")
	ErrNotAssigned        = errors.New("patient is not assigned to this doctor")
	ErrNoHealthData       = errors.New("no health data recorded")
	ErrInvalidInput       = errors.New("invalid input")
)
