package window

var OpenError = openError
