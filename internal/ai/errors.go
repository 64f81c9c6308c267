package ai

// FailureKind is the closed set of outward error categories.
type FailureKind int

const (
	// FailureInvalidInput is client-caused and never retried.
	FailureInvalidInput FailureKind = iota
	// FailureConfiguration means a missing credential, operator-actionable.
	FailureConfiguration
	// FailureRateLimited means provider quota is exhausted, caller may retry after backoff.
	FailureRateLimited
	// FailureModel means the provider failed with a diagnostic message.
	FailureModel
	// FailureUnknown means the provider failed without a usable message (incl. timeout).
	FailureUnknown
)

// Failure is the error type every AI operation returns: a kind from the
// closed set, a user-facing message, and a retry hint for the caller.
type Failure struct {
	Kind      FailureKind
	Message   string
	Retryable bool
}

func (f *Failure) Error() string {
	return f.Message
}

// User-facing messages (Korean, matching the product's voice).
const (
	MsgEmptyInput     = "할 일 내용을 입력해줘"
	MsgInputTooShort  = "최소 2자 이상 입력해줘"
	MsgInputTooLong   = "최대 500자까지 입력 가능해 (현재: %d자)"
	MsgMissingAPIKey  = "API 키가 설정되지 않았어. 관리자에게 문의해줘."
	MsgQuotaExceeded  = "API 호출 한도를 초과했어. 잠시 후 다시 시도해줘."
	MsgModelFailure   = "AI 처리 중 오류가 발생했어. 잠시 후 다시 시도해줘. (%s)"
	MsgUnknownFailure = "AI 처리 중 알 수 없는 오류가 발생했어. 잠시 후 다시 시도해줘."
	MsgTodosRequired  = "할 일 목록 데이터가 필요해"
	MsgInvalidPeriod  = "분석 기간을 선택해줘 (today 또는 week)"
)

// InvalidInput creates a client-error failure.
func InvalidInput(message string) *Failure {
	return &Failure{Kind: FailureInvalidInput, Message: message}
}

// NotConfigured is the failure returned when the model credential is absent.
func NotConfigured() *Failure {
	return &Failure{Kind: FailureConfiguration, Message: MsgMissingAPIKey}
}
