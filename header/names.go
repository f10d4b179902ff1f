package header

// Canonical names of the headers standardized by RFC 7826 section 18.
// Using the constants instead of hand-typed literals keeps call sites free of
// string drift; comparisons stay case-insensitive either way.
const (
	Accept                  Name = "Accept"
	AcceptCredentials       Name = "Accept-Credentials"
	AcceptEncoding          Name = "Accept-Encoding"
	AcceptLanguage          Name = "Accept-Language"
	AcceptRanges            Name = "Accept-Ranges"
	Allow                   Name = "Allow"
	AuthenticationInfo      Name = "Authentication-Info"
	Authorization           Name = "Authorization"
	Bandwidth               Name = "Bandwidth"
	Blocksize               Name = "Blocksize"
	CacheControl            Name = "Cache-Control"
	Connection              Name = "Connection"
	ConnectionCredentials   Name = "Connection-Credentials"
	ContentBase             Name = "Content-Base"
	ContentEncoding         Name = "Content-Encoding"
	ContentLanguage         Name = "Content-Language"
	ContentLength           Name = "Content-Length"
	ContentLocation         Name = "Content-Location"
	ContentType             Name = "Content-Type"
	CSeq                    Name = "CSeq"
	Date                    Name = "Date"
	Expires                 Name = "Expires"
	From                    Name = "From"
	IfMatch                 Name = "If-Match"
	IfModifiedSince         Name = "If-Modified-Since"
	IfNoneMatch             Name = "If-None-Match"
	LastModified            Name = "Last-Modified"
	Location                Name = "Location"
	MediaProperties         Name = "Media-Properties"
	MediaRange              Name = "Media-Range"
	MTag                    Name = "MTag"
	NotifyReason            Name = "Notify-Reason"
	PipelinedRequests       Name = "Pipelined-Requests"
	ProxyAuthenticate       Name = "Proxy-Authenticate"
	ProxyAuthenticationInfo Name = "Proxy-Authentication-Info"
	ProxyAuthorization      Name = "Proxy-Authorization"
	ProxyRequire            Name = "Proxy-Require"
	ProxySupported          Name = "Proxy-Supported"
	Public                  Name = "Public"
	Range                   Name = "Range"
	Referrer                Name = "Referrer"
	RequestStatus           Name = "Request-Status"
	Require                 Name = "Require"
	RetryAfter              Name = "Retry-After"
	RTPInfo                 Name = "RTP-Info"
	Scale                   Name = "Scale"
	SeekStyle               Name = "Seek-Style"
	Server                  Name = "Server"
	Session                 Name = "Session"
	Speed                   Name = "Speed"
	Supported               Name = "Supported"
	TerminateReason         Name = "Terminate-Reason"
	Timestamp               Name = "Timestamp"
	Transport               Name = "Transport"
	Unsupported             Name = "Unsupported"
	UserAgent               Name = "User-Agent"
	Via                     Name = "Via"
	WWWAuthenticate         Name = "WWW-Authenticate"
)
