package constant

const (
	ContextKeyRequestID = "requestid"

	RequestIDHeader = "X-Sumstats-Request-ID"
	ViewCacheHeader = "X-Sumstats-Cache"

	MIMEApplicationMsgpack = "application/msgpack"
)
