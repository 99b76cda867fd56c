package handler

type ContextKey string

const (
	RoleCtxKey     ContextKey = "role"
	SubCtxKey      ContextKey = "sub"
	AppointmentCtx ContextKey = "appointment"
)
