package goroutine

import (
	"runtime/debug"

	"github.com/sirupsen/logrus"

	"github.com/mondedelice/bakery-backend/internal/logger"
)

// SafeGo lance une goroutine qui journalise les panics au lieu de faire
// tomber le serveur (boucles du hub WebSocket, pompes d'écriture...).
func SafeGo(fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				if logger.Log != nil {
					logger.Log.WithFields(logrus.Fields{
						"panic": r,
						"stack": string(debug.Stack()),
					}).Error("panic dans une goroutine")
				}
			}
		}()
		fn()
	}()
}
