package commands

const (
	_etc = "/usr/local/etc/stock-sheets"

	DEFAULT_CREDENTIALS = _etc + "/credentials.json"
)
