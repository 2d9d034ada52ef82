package watcher

var IsConfigFile = isConfigFile
