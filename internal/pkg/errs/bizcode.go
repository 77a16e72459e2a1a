package errs

const (
	BizCodeInvalidParams = 1001

	BizCodeUnknownProduct         = 9001
	BizCodeUnsupportedSelector    = 9002
	BizCodeRetrieval              = 9003
	BizCodeFeedParse              = 9004
	BizCodeUnexpectedTriggerShape = 9005
	BizCodeTitleFormat            = 9006
	BizCodeValueDecode            = 9007
	BizCodeMissingLocalization    = 9008
)
