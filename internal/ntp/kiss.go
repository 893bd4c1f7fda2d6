package ntp

import "encoding/binary"

// Kiss-o'-death codes from RFC 4330 section 8, four ASCII characters left
// justified and zero filled. Usually only DENY, RSTR and RATE occur with
// SNTP clients; INIT and STEP show up when the server is in some special
// temporary condition.
var kissCodes = map[string]string{
	"ACST": "The association belongs to an anycast server.",
	"AUTH": "Server authentication failed.",
	"AUTO": "Autokey sequence failed.",
	"BCST": "The association belongs to a broadcast server.",
	"CRYP": "Cryptographic authentication or identification failed.",
	"DENY": "Access denied by remote server.",
	"DROP": "Lost peer in symmetric mode.",
	"RSTR": "Access denied due to local policy.",
	"INIT": "The association has not yet synchronized for the first time.",
	"MCST": "The association belongs to a manycast server.",
	"NKEY": "No key found. Either the key was never installed or is not trusted.",
	"RATE": "Rate exceeded. The server has temporarily denied access because the client exceeded the rate threshold.",
	"RMOT": "Somebody is tinkering with the association from a remote host running ntpdc.",
	"STEP": "A step change in system time has occurred, but the association has not yet resynchronized.",
}

// KissCode reinterprets a stratum-0 reference ID as its four-character code.
// Exactly four bytes are taken; the wire carries no terminator.
func KissCode(refid uint32) string {
	var code [4]byte
	binary.BigEndian.PutUint32(code[:], refid)
	return string(code[:])
}

// KissMessage explains a kiss code. An unknown code reports ok == false, it
// is not an error by itself.
func KissMessage(code string) (msg string, ok bool) {
	msg, ok = kissCodes[code]
	return
}
