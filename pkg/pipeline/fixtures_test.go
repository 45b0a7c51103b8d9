package pipeline

// natalDocument is a minimal but valid natal chart used by the pipeline
// tests. Two planets and one aspect are enough to exercise placement,
// rendering and the aspect network without drowning failures in output.
const natalDocument = `{
  "mode": "Natal",
  "first": {
    "name": "John",
    "city": "Liverpool",
    "nation": "GB",
    "lat": 53.4,
    "lng": -2.98,
    "local_time": "1940-10-09T18:30:00+01:00",
    "zodiac_type": "Tropic",
    "house_system": "Placidus",
    "points": [
      {"id": 0, "name": "Sun", "sign": "Lib", "sign_num": 6, "quality": "Cardinal", "element": "Air", "position": 16.5, "abs_pos": 196.5, "point_type": "Planet", "house": "Seventh_House"},
      {"id": 1, "name": "Moon", "sign": "Aqu", "sign_num": 10, "quality": "Fixed", "element": "Air", "position": 3.2, "abs_pos": 303.2, "point_type": "Planet", "house": "Eleventh_House"}
    ],
    "houses": [
      {"number": 1, "name": "First_House", "sign": "Ari", "sign_num": 0, "position": 10.0, "abs_pos": 10.0},
      {"number": 2, "name": "Second_House", "sign": "Tau", "sign_num": 1, "position": 10.0, "abs_pos": 40.0},
      {"number": 3, "name": "Third_House", "sign": "Gem", "sign_num": 2, "position": 10.0, "abs_pos": 70.0},
      {"number": 4, "name": "Fourth_House", "sign": "Can", "sign_num": 3, "position": 10.0, "abs_pos": 100.0},
      {"number": 5, "name": "Fifth_House", "sign": "Leo", "sign_num": 4, "position": 10.0, "abs_pos": 130.0},
      {"number": 6, "name": "Sixth_House", "sign": "Vir", "sign_num": 5, "position": 10.0, "abs_pos": 160.0},
      {"number": 7, "name": "Seventh_House", "sign": "Lib", "sign_num": 6, "position": 10.0, "abs_pos": 190.0},
      {"number": 8, "name": "Eighth_House", "sign": "Sco", "sign_num": 7, "position": 10.0, "abs_pos": 220.0},
      {"number": 9, "name": "Ninth_House", "sign": "Sag", "sign_num": 8, "position": 10.0, "abs_pos": 250.0},
      {"number": 10, "name": "Tenth_House", "sign": "Cap", "sign_num": 9, "position": 10.0, "abs_pos": 280.0},
      {"number": 11, "name": "Eleventh_House", "sign": "Aqu", "sign_num": 10, "position": 10.0, "abs_pos": 310.0},
      {"number": 12, "name": "Twelfth_House", "sign": "Pis", "sign_num": 11, "position": 10.0, "abs_pos": 340.0}
    ]
  },
  "aspects": [
    {"p1_name": "Sun", "p1_abs_pos": 196.5, "p2_name": "Moon", "p2_abs_pos": 303.2, "aspect": "square", "aspect_degrees": 90, "orbit": 1.2, "diff": 106.7, "p1": 0, "p2": 1}
  ]
}`
