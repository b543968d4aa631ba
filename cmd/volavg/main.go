/*
Volavg prints running average volumes for a price/volume time series.

Series are read from Alpha Vantage JSON payloads, one file per period:

	volavg --symbol IBM --weekly weekly.json --monthly monthly.json \
	       --period weekly --at 10 --at 52

prints the readout for the whole series, followed by one readout per
right edge given with --at. A yearly series is derived from the monthly one
if not given.

Flags may also be set in $HOME/.volavg.yaml or as environment variables
prefixed with VOLAVG_ (e.g. VOLAVG_PERIOD=monthly).
*/
package main

func main() {
	Execute()
}
