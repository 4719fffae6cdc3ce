package languages

// GlobalBlockedDomains lists host substrings that are never crawled,
// regardless of language.
var GlobalBlockedDomains = []string{
	"example-spam.com",
	"malware-site.com",
}

// BlockedExtensions lists URL path extensions that are never fetched:
// documents, archives, media, and binaries.
var BlockedExtensions = []string{
	"pdf", "doc", "docx", "xls", "xlsx", "ppt", "pptx",
	"zip", "rar", "tar", "gz", "7z",
	"mp3", "mp4", "avi", "mov", "wmv", "flv",
	"jpg", "jpeg", "png", "gif", "bmp", "svg", "ico",
	"exe", "dmg", "pkg", "deb", "rpm",
}

// preferredDomains holds host substrings that are scheduled ahead of other
// discovered links for a given language. Advisory only; never bypasses
// frontier rejection checks.
var preferredDomains = map[string][]string{
	"bg": {".bg", "wikipedia.org"},
	"hr": {".hr", "wikipedia.org"},
	"cs": {".cz", "wikipedia.org"},
	"da": {".dk", "wikipedia.org"},
	"nl": {".nl", ".be", "wikipedia.org"},
	"en": {".uk", ".ie", ".com", "wikipedia.org"},
	"et": {".ee", "wikipedia.org"},
	"fi": {".fi", "wikipedia.org"},
	"fr": {".fr", ".be", ".ch", "wikipedia.org"},
	"de": {".de", ".at", ".ch", "wikipedia.org"},
	"el": {".gr", "wikipedia.org"},
	"hu": {".hu", "wikipedia.org"},
	"ga": {".ie", "wikipedia.org"},
	"it": {".it", ".ch", "wikipedia.org"},
	"lv": {".lv", "wikipedia.org"},
	"lt": {".lt", "wikipedia.org"},
	"mt": {".mt", "wikipedia.org"},
	"pl": {".pl", "wikipedia.org"},
	"pt": {".pt", "wikipedia.org"},
	"ro": {".ro", "wikipedia.org"},
	"sk": {".sk", "wikipedia.org"},
	"sl": {".si", "wikipedia.org"},
	"es": {".es", "wikipedia.org"},
	"sv": {".se", "wikipedia.org"},
}

// PreferredDomains returns the preferred-domain hints for a language code.
func PreferredDomains(code string) []string {
	return preferredDomains[code]
}
