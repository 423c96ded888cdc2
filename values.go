package httperr

import "github.com/indigo-web/httperr/status"

// Ready-made values for the registered 3xx, 4xx and 5xx statuses, carrying
// their table reason phrases. As Error is immutable, sharing these is safe;
// derive customized copies via With or WithContentType.
var (
	MultipleChoices   = Must(From(status.MultipleChoices))
	MovedPermanently  = Must(From(status.MovedPermanently))
	Found             = Must(From(status.Found))
	SeeOther          = Must(From(status.SeeOther))
	NotModified       = Must(From(status.NotModified))
	UseProxy          = Must(From(status.UseProxy))
	TemporaryRedirect = Must(From(status.TemporaryRedirect))
	PermanentRedirect = Must(From(status.PermanentRedirect))

	BadRequest                   = Must(From(status.BadRequest))
	Unauthorized                 = Must(From(status.Unauthorized))
	PaymentRequired              = Must(From(status.PaymentRequired))
	Forbidden                    = Must(From(status.Forbidden))
	NotFound                     = Must(From(status.NotFound))
	MethodNotAllowed             = Must(From(status.MethodNotAllowed))
	NotAcceptable                = Must(From(status.NotAcceptable))
	ProxyAuthRequired            = Must(From(status.ProxyAuthRequired))
	RequestTimeout               = Must(From(status.RequestTimeout))
	Conflict                     = Must(From(status.Conflict))
	Gone                         = Must(From(status.Gone))
	LengthRequired               = Must(From(status.LengthRequired))
	PreconditionFailed           = Must(From(status.PreconditionFailed))
	RequestEntityTooLarge        = Must(From(status.RequestEntityTooLarge))
	RequestURITooLong            = Must(From(status.RequestURITooLong))
	UnsupportedMediaType         = Must(From(status.UnsupportedMediaType))
	RequestedRangeNotSatisfiable = Must(From(status.RequestedRangeNotSatisfiable))
	ExpectationFailed            = Must(From(status.ExpectationFailed))
	Teapot                       = Must(From(status.Teapot))
	MisdirectedRequest           = Must(From(status.MisdirectedRequest))
	UnprocessableEntity          = Must(From(status.UnprocessableEntity))
	Locked                       = Must(From(status.Locked))
	FailedDependency             = Must(From(status.FailedDependency))
	TooEarly                     = Must(From(status.TooEarly))
	UpgradeRequired              = Must(From(status.UpgradeRequired))
	PreconditionRequired         = Must(From(status.PreconditionRequired))
	TooManyRequests              = Must(From(status.TooManyRequests))
	RequestHeaderFieldsTooLarge  = Must(From(status.RequestHeaderFieldsTooLarge))
	UnavailableForLegalReasons   = Must(From(status.UnavailableForLegalReasons))

	InternalServerError           = Must(From(status.InternalServerError))
	NotImplemented                = Must(From(status.NotImplemented))
	BadGateway                    = Must(From(status.BadGateway))
	ServiceUnavailable            = Must(From(status.ServiceUnavailable))
	GatewayTimeout                = Must(From(status.GatewayTimeout))
	HTTPVersionNotSupported       = Must(From(status.HTTPVersionNotSupported))
	VariantAlsoNegotiates         = Must(From(status.VariantAlsoNegotiates))
	InsufficientStorage           = Must(From(status.InsufficientStorage))
	LoopDetected                  = Must(From(status.LoopDetected))
	NotExtended                   = Must(From(status.NotExtended))
	NetworkAuthenticationRequired = Must(From(status.NetworkAuthenticationRequired))
)
