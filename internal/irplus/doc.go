// Package irplus renders device-definition documents for the irplus
// Android application.
//
// The emitted schema targets WINLIRC_NEC1 playback: the device header
// carries fixed NEC timing attributes and each decoded key becomes a
// button whose body holds the two 16-bit code halves.
package irplus
