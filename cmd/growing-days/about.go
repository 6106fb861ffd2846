package main

const aboutText = `
================================================================================
Growing Days Calculator
================================================================================

Computes per-tile growing-season lengths from a world snapshot dump,
offline, by reproducing the simulator's seasonal temperature model.

--------------------------------------------------------------------------------
SEASONAL TEMPERATURE MODEL
--------------------------------------------------------------------------------

Temperature follows a sinusoid over a 60-day year of 60000-tick days:

    temp(tick) = base_temp + offset(tick)

    1. year_pct = (tick / 60000 mod 60) / 60      position in the year [0,1)
    2. phase    = 10/12                           midwinter peak
    3. angle    = 2pi * (year_pct - phase)
    4. offset   = cos(angle) * (-amplitude)

The amplitude depends on distance from the equator:

    Distance from Equator | Seasonal Amplitude
    ----------------------|-------------------
           0.0 (equator)  |     +/- 3 C
           0.1            |     +/- 4 C
           1.0 (poles)    |     +/-28 C

Southern hemisphere negates the amplitude for a six-month phase shift.

--------------------------------------------------------------------------------
GROWING DAYS
--------------------------------------------------------------------------------

1. For each of 12 "twelfths" (5-day periods): average the temperature
   at 120 evenly spaced ticks, offset half a day into the period.
2. Count twelfths with 6 C <= average <= 42 C.
3. Growing days = count * 5.

Year-round shortcut from snapshot data alone:

    year-round if MinTemperature >= 6 C and MaxTemperature <= 42 C

The snapshot stores seasonal extremes, so the engine estimates the
model parameters from them:

    base_temp = (min + max) / 2
    amplitude = (max - min) / 2
    distance  = inverse of the seasonal curve at that amplitude

--------------------------------------------------------------------------------
SNAPSHOT FORMAT
--------------------------------------------------------------------------------

    TILE 48105
      temperature: 26.06295        base/mean temperature
      MinTemperature: 21.83317     coldest seasonal temperature
      MaxTemperature: 30.29361     hottest seasonal temperature
      hilliness: Mountainous       Flat, SmallHills, LargeHills, Mountainous
      Rivers: [...]                "[...]" = has river, "null" = no river
      Roads: [...]                 "[...]" = has road, "null" = no road

"Rivers: null" means NO river (not a missing key). Unknown keys are
preserved; unrecognized lines are ignored.

================================================================================
`
